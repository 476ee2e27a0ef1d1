// package.go
package aptcache

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Package is a package name confirmed present in the package index.
// Only Client.New validates; the check can go stale if the index changes.
// Two packages are equal when their names are.
type Package struct {
	name string
}

// Name returns the package name
func (p Package) Name() string {
	return p.name
}

// String implements fmt.Stringer
func (p Package) String() string {
	return p.name
}

// Equal reports whether p and other name the same package
func (p Package) Equal(other Package) bool {
	return p.name == other.name
}

// IsZero reports whether p was never looked up
func (p Package) IsZero() bool {
	return p.name == ""
}

type packageDoc struct {
	Name string `yaml:"name"`
}

// MarshalYAML encodes the package as {name: <name>}
func (p Package) MarshalYAML() (interface{}, error) {
	return packageDoc{Name: p.name}, nil
}

// UnmarshalYAML decodes {name: <name>} without consulting the index
func (p *Package) UnmarshalYAML(value *yaml.Node) error {
	var doc packageDoc
	if err := value.Decode(&doc); err != nil {
		return fmt.Errorf("decoding package: %w", err)
	}
	if doc.Name == "" {
		return fmt.Errorf("decoding package: %w", ErrInvalidPackage)
	}
	p.name = doc.Name
	return nil
}
