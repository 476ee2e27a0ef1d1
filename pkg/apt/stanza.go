// pkg/apt/stanza.go
package apt

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PackageInfo is one stanza of `apt-cache show` output
type PackageInfo struct {
	Package       string   `yaml:"package"`
	Version       string   `yaml:"version,omitempty"`
	Architecture  string   `yaml:"architecture,omitempty"`
	Maintainer    string   `yaml:"maintainer,omitempty"`
	InstalledSize int64    `yaml:"installed_size,omitempty"` // bytes
	PreDepends    []string `yaml:"pre_depends,omitempty"`
	Depends       []string `yaml:"depends,omitempty"`
	Recommends    []string `yaml:"recommends,omitempty"`
	Suggests      []string `yaml:"suggests,omitempty"`
	Description   string   `yaml:"description,omitempty"`
	Homepage      string   `yaml:"homepage,omitempty"`
	Section       string   `yaml:"section,omitempty"`
	Priority      string   `yaml:"priority,omitempty"`
	Source        string   `yaml:"source,omitempty"`
}

// field is one "Name: value" entry of a stanza. Continuation lines are
// folded into value, one per line.
type field struct {
	name  string
	value string
}

// ParseStanzas parses RFC822-style package stanzas separated by blank lines.
// A line starting with a space or tab continues the preceding field,
// whichever field that is.
func ParseStanzas(r io.Reader) ([]*PackageInfo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading stanzas: %w", err)
	}

	var packages []*PackageInfo
	var fields []field

	flush := func() {
		if info := stanzaInfo(fields); info != nil {
			packages = append(packages, info)
		}
		fields = fields[:0]
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")

		// Empty line indicates end of package stanza
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		if line[0] == ' ' || line[0] == '\t' {
			if n := len(fields); n > 0 {
				fields[n-1].value += "\n" + strings.TrimSpace(line)
			}
			continue
		}

		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "Package" && len(fields) > 0 {
			flush()
		}
		fields = append(fields, field{name: name, value: strings.TrimSpace(value)})
	}
	flush()

	return packages, nil
}

// stanzaInfo maps the fields of one stanza onto a PackageInfo. Stanzas
// without a Package field are dropped.
func stanzaInfo(fields []field) *PackageInfo {
	var info *PackageInfo
	for _, f := range fields {
		if f.name == "Package" {
			info = &PackageInfo{Package: f.value}
			break
		}
	}
	if info == nil {
		return nil
	}

	for _, f := range fields {
		switch f.name {
		case "Version":
			info.Version = f.value
		case "Architecture":
			info.Architecture = f.value
		case "Maintainer":
			info.Maintainer = f.value
		case "Installed-Size":
			if size, err := strconv.ParseInt(f.value, 10, 64); err == nil {
				info.InstalledSize = size * 1024 // KB to bytes
			}
		case "Pre-Depends":
			info.PreDepends = parsePackageList(f.value)
		case "Depends":
			info.Depends = parsePackageList(f.value)
		case "Recommends":
			info.Recommends = parsePackageList(f.value)
		case "Suggests":
			info.Suggests = parsePackageList(f.value)
		case "Description", "Description-en":
			if info.Description == "" {
				info.Description = f.value
			}
		case "Homepage":
			info.Homepage = f.value
		case "Section":
			info.Section = f.value
		case "Priority":
			info.Priority = f.value
		case "Source":
			info.Source = f.value
		}
	}
	return info
}

// parsePackageList parses a comma-separated dependency field, dropping
// version constraints and all but the first alternative
func parsePackageList(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if idx := strings.Index(part, "|"); idx != -1 {
			part = strings.TrimSpace(part[:idx])
		}
		if idx := strings.Index(part, "("); idx != -1 {
			part = strings.TrimSpace(part[:idx])
		}
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}
