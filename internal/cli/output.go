// internal/cli/output.go
package cli

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arc-language/aptcache"
	"github.com/arc-language/aptcache/pkg/core"
)

// relationDoc is the yaml shape of depends/recommends output
type relationDoc struct {
	Package  aptcache.Package   `yaml:"package"`
	Relation string             `yaml:"relation"`
	Packages []aptcache.Package `yaml:"packages"`
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func writeNames(w io.Writer, names []string) error {
	if config.Output == core.OutputYAML {
		if names == nil {
			names = []string{}
		}
		return writeYAML(w, names)
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

func writeRelation(w io.Writer, doc relationDoc) error {
	if config.Output == core.OutputYAML {
		if doc.Packages == nil {
			doc.Packages = []aptcache.Package{}
		}
		return writeYAML(w, doc)
	}
	if len(doc.Packages) == 0 {
		_, err := fmt.Fprintf(w, "%s: no %s\n", doc.Package, doc.Relation)
		return err
	}
	for _, p := range doc.Packages {
		if _, err := fmt.Fprintln(w, p.Name()); err != nil {
			return err
		}
	}
	return nil
}
