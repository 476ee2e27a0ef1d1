package apt

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

const bashShow = `Package: bash
Version: 5.2.15-2+b7
Installed-Size: 7163
Maintainer: Matthias Klose <doko@debian.org>
Architecture: amd64
Pre-Depends: libc6 (>= 2.36), libtinfo6 (>= 6)
Depends: base-files (>= 2.1.12), debianutils (>= 5.6-0.1)
Recommends: bash-completion (>= 20060301-0)
Suggests: bash-doc
Description: GNU Bourne Again SHell
 Bash is an sh-compatible command language interpreter.
 .
 Bash is ultimately intended to be a conformant implementation.
Homepage: http://tiswww.case.edu/php/chet/bash/bashtop.html
Section: shells
Priority: required

Package: bash
Version: 5.2.15-2
Architecture: amd64
Depends: base-files | base-files-alt, debianutils
`

func TestParseStanzas(t *testing.T) {
	infos, err := ParseStanzas(strings.NewReader(bashShow))
	if err != nil {
		t.Fatalf("ParseStanzas failed: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("got %d stanzas, want 2", len(infos))
	}

	first := infos[0]
	if first.Version != "5.2.15-2+b7" || first.Section != "shells" || first.Priority != "required" {
		t.Errorf("unexpected first stanza: %+v", first)
	}
	if first.InstalledSize != 7163*1024 {
		t.Errorf("InstalledSize = %d", first.InstalledSize)
	}
	if want := []string{"libc6", "libtinfo6"}; !reflect.DeepEqual(first.PreDepends, want) {
		t.Errorf("PreDepends = %v, want %v", first.PreDepends, want)
	}
	if want := []string{"base-files", "debianutils"}; !reflect.DeepEqual(first.Depends, want) {
		t.Errorf("Depends = %v, want %v", first.Depends, want)
	}
	if !strings.HasPrefix(first.Description, "GNU Bourne Again SHell\nBash is") {
		t.Errorf("Description = %q", first.Description)
	}

	if want := []string{"base-files", "debianutils"}; !reflect.DeepEqual(infos[1].Depends, want) {
		t.Errorf("second Depends = %v, want %v", infos[1].Depends, want)
	}
}

func TestShow(t *testing.T) {
	runner := &fakeRunner{results: map[string]*Result{
		"apt-cache show bash": stdout(bashShow),
		"apt-cache show nope": {ExitCode: 100, Stderr: []byte("E: No packages found")},
	}}
	c := NewClient(&Config{Runner: runner})

	infos, err := c.Show(context.Background(), "bash")
	if err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	if len(infos) != 2 || infos[0].Package != "bash" {
		t.Errorf("Show = %+v", infos)
	}

	if _, err := c.Show(context.Background(), "nope"); !errors.Is(err, ErrToolFailed) {
		t.Errorf("Show(nope) error = %v, want ErrToolFailed", err)
	}
	if _, err := c.Show(context.Background(), "empty"); !errors.Is(err, ErrNoResults) {
		t.Errorf("Show(empty) error = %v, want ErrNoResults", err)
	}
}

func TestParseStanzasFoldedFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  PackageInfo
	}{
		{
			name: "depends continued",
			input: "Package: libfoo\n" +
				"Depends: libc6 (>= 2.36),\n" +
				" libbar1 | libbar-alt,\n" +
				"\tlibbaz2\n" +
				"Section: libs\n",
			want: PackageInfo{
				Package: "libfoo",
				Depends: []string{"libc6", "libbar1", "libbaz2"},
				Section: "libs",
			},
		},
		{
			name: "continuation does not leak into next field",
			input: "Package: libfoo\n" +
				"Recommends: a,\n" +
				" b\n" +
				"Suggests: c\n",
			want: PackageInfo{
				Package:    "libfoo",
				Recommends: []string{"a", "b"},
				Suggests:   []string{"c"},
			},
		},
		{
			name: "crlf and description",
			input: "Package: libfoo\r\n" +
				"Description: short\r\n" +
				" long text\r\n",
			want: PackageInfo{
				Package:     "libfoo",
				Description: "short\nlong text",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			infos, err := ParseStanzas(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ParseStanzas failed: %v", err)
			}
			if len(infos) != 1 {
				t.Fatalf("got %d stanzas, want 1", len(infos))
			}
			if !reflect.DeepEqual(*infos[0], tt.want) {
				t.Errorf("got %+v, want %+v", *infos[0], tt.want)
			}
		})
	}
}

func TestParseStanzasLongField(t *testing.T) {
	long := strings.Repeat("x", 2<<20)
	infos, err := ParseStanzas(strings.NewReader("Package: big\nDescription: " + long + "\n"))
	if err != nil {
		t.Fatalf("ParseStanzas failed: %v", err)
	}
	if len(infos) != 1 || len(infos[0].Description) != len(long) {
		t.Errorf("long description not preserved")
	}
}
