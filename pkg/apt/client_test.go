package apt

import (
	"context"
	"errors"
	"os/exec"
	"reflect"
	"strings"
	"testing"
)

type call struct {
	name string
	args []string
	dir  string
}

// fakeRunner returns canned results keyed by "name arg1 arg2"
type fakeRunner struct {
	results map[string]*Result
	err     error
	calls   []call
}

func (f *fakeRunner) Run(ctx context.Context, name string, args []string, opts ...RunOption) (*Result, error) {
	var rc RunConfig
	for _, opt := range opts {
		opt(&rc)
	}
	f.calls = append(f.calls, call{name: name, args: args, dir: rc.Dir})
	if f.err != nil {
		return nil, f.err
	}
	if res, ok := f.results[name+" "+strings.Join(args, " ")]; ok {
		return res, nil
	}
	return &Result{}, nil
}

func stdout(s string) *Result {
	return &Result{Stdout: []byte(s)}
}

const bashDepends = `bash
  PreDepends: libc6
  PreDepends: libtinfo6
  Depends: base-files
  Depends: debianutils
  Recommends: bash-completion
  Suggests: bash-doc
`

func TestQuery(t *testing.T) {
	runner := &fakeRunner{results: map[string]*Result{
		"apt-cache depends bash": stdout(bashDepends),
		"apt-cache search bash":  stdout("bash - GNU Bourne Again SHell\nbash-completion - programmable completion\n"),
	}}
	c := NewClient(&Config{Runner: runner})

	tests := []struct {
		sub   string
		parse LineParser
		want  []string
	}{
		{SubcommandDepends, Depends, []string{"base-files", "debianutils"}},
		{SubcommandDepends, Recommends, []string{"bash-completion"}},
		{SubcommandDepends, ParserFor(RelationPreDepends), []string{"libc6", "libtinfo6"}},
		{SubcommandSearch, Search, []string{"bash", "bash-completion"}},
	}

	for _, tt := range tests {
		got, err := c.Query(context.Background(), tt.sub, "bash", tt.parse)
		if err != nil {
			t.Fatalf("Query(%s) failed: %v", tt.sub, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Query(%s) = %v, want %v", tt.sub, got, tt.want)
		}
	}

	want := call{name: "apt-cache", args: []string{"depends", "bash"}}
	if !reflect.DeepEqual(runner.calls[0], want) {
		t.Errorf("first call = %+v, want %+v", runner.calls[0], want)
	}
}

func TestQueryNoResults(t *testing.T) {
	runner := &fakeRunner{results: map[string]*Result{
		"apt-cache depends foo": stdout("foo\n  Suggests: bar\n"),
	}}
	c := NewClient(&Config{Runner: runner})

	for _, pkg := range []string{"foo", "empty"} {
		got, err := c.Query(context.Background(), SubcommandDepends, pkg, Depends)
		if !errors.Is(err, ErrNoResults) {
			t.Errorf("Query(%s) error = %v, want ErrNoResults", pkg, err)
		}
		if got != nil {
			t.Errorf("Query(%s) = %v, want nil", pkg, got)
		}
	}
}

func TestQueryPreservesOrder(t *testing.T) {
	lines := []string{"zeta", "alpha", "mid", "alpha"}
	runner := &fakeRunner{results: map[string]*Result{
		"apt-cache search x": stdout(strings.Join(lines, " - desc\n") + " - desc\n"),
	}}
	c := NewClient(&Config{Runner: runner})

	got, err := c.Query(context.Background(), SubcommandSearch, "x", Search)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if !reflect.DeepEqual(got, lines) {
		t.Errorf("Query = %v, want %v", got, lines)
	}
}

func TestQueryErrors(t *testing.T) {
	tests := []struct {
		name   string
		runner *fakeRunner
		want   error
	}{
		{
			name:   "launch failure",
			runner: &fakeRunner{err: exec.ErrNotFound},
			want:   ErrToolNotFound,
		},
		{
			name: "non-zero exit",
			runner: &fakeRunner{results: map[string]*Result{
				"apt-cache search x": {ExitCode: 100, Stderr: []byte("E: boom")},
			}},
			want: ErrToolFailed,
		},
		{
			name: "invalid utf-8",
			runner: &fakeRunner{results: map[string]*Result{
				"apt-cache search x": {Stdout: []byte{'b', 0xff, 0xfe, '\n'}},
			}},
			want: ErrNotText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(&Config{Runner: tt.runner})
			_, err := c.Query(context.Background(), SubcommandSearch, "x", Search)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			var cmdErr *CommandError
			if !errors.As(err, &cmdErr) {
				t.Fatalf("error %T is not a *CommandError", err)
			}
			if cmdErr.Tool != "apt-cache" {
				t.Errorf("Tool = %q, want apt-cache", cmdErr.Tool)
			}
		})
	}
}

func TestCommandErrorMessage(t *testing.T) {
	err := &CommandError{
		Tool:     "apt-cache",
		Args:     []string{"depends", "x"},
		ExitCode: 100,
		Stderr:   "E: No packages found\n",
		Err:      ErrToolFailed,
	}
	want := "apt-cache depends x: tool exited with non-zero status (exit 100): E: No packages found"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestSource(t *testing.T) {
	res := &Result{Stdout: []byte("Reading package lists...\n"), Stderr: []byte("E: no deb-src\n"), ExitCode: 100}
	runner := &fakeRunner{results: map[string]*Result{"apt-get source hello": res}}
	c := NewClient(&Config{Runner: runner})

	got, err := c.Source(context.Background(), "hello", "/tmp/src")
	if err != nil {
		t.Fatalf("Source failed: %v", err)
	}
	if got != res {
		t.Errorf("Source returned %+v, want the raw result", got)
	}
	if got.Success() {
		t.Error("Success() = true for exit 100")
	}

	want := call{name: "apt-get", args: []string{"source", "hello"}, dir: "/tmp/src"}
	if !reflect.DeepEqual(runner.calls[0], want) {
		t.Errorf("call = %+v, want %+v", runner.calls[0], want)
	}
}

func TestCustomTools(t *testing.T) {
	runner := &fakeRunner{}
	c := NewClient(&Config{Runner: runner, CacheTool: "/usr/local/bin/apt-cache", SourceTool: "apt"})

	c.Query(context.Background(), SubcommandSearch, "x", Search)
	c.Source(context.Background(), "x", "")

	if runner.calls[0].name != "/usr/local/bin/apt-cache" || runner.calls[1].name != "apt" {
		t.Errorf("tools = %q, %q", runner.calls[0].name, runner.calls[1].name)
	}
}

func TestParseLines(t *testing.T) {
	got, err := ParseLines([]byte("  Depends: a\r\n  Depends: b\n\n"), Depends)
	if err != nil {
		t.Fatalf("ParseLines failed: %v", err)
	}
	if want := []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ParseLines = %v, want %v", got, want)
	}

	got, err = ParseLines(nil, Search)
	if err != nil || got != nil {
		t.Errorf("ParseLines(nil) = %v, %v", got, err)
	}
}

func TestParseLinesLongLine(t *testing.T) {
	long := strings.Repeat("a", 2<<20)
	out := []byte("  Depends: " + long + "\n  Depends: b")

	got, err := ParseLines(out, Depends)
	if err != nil {
		t.Fatalf("ParseLines failed: %v", err)
	}
	if len(got) != 2 || got[0] != long || got[1] != "b" {
		t.Errorf("ParseLines returned %d results, want the long name and b", len(got))
	}
}

func TestQueryLongLine(t *testing.T) {
	long := strings.Repeat("b", 2<<20)
	runner := &fakeRunner{results: map[string]*Result{
		"apt-cache search big": stdout(long + " - huge\n"),
	}}
	c := NewClient(&Config{Runner: runner})

	got, err := c.Query(context.Background(), SubcommandSearch, "big", Search)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(got) != 1 || got[0] != long {
		t.Errorf("Query returned %d results, want the long token", len(got))
	}
}
