// pkg/apt/parser.go
package apt

import "strings"

// LineParser extracts a package name from one line of tool output.
// The second return value reports whether the line matched.
type LineParser func(line string) (string, bool)

// Search parses a line of `apt-cache search` output ("<name> - <description>")
// and returns the first whitespace-delimited token.
func Search(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}

// Depends parses a "  Depends: <name>" line of `apt-cache depends` output
func Depends(line string) (string, bool) {
	return stripLabel(line, RelationDepends)
}

// Recommends parses a "  Recommends: <name>" line of `apt-cache depends` output
func Recommends(line string) (string, bool) {
	return stripLabel(line, RelationRecommends)
}

// ParserFor returns the parser for lines labelled with rel.
func ParserFor(rel Relation) LineParser {
	switch rel {
	case RelationDepends:
		return Depends
	case RelationRecommends:
		return Recommends
	}
	return func(line string) (string, bool) {
		return stripLabel(line, rel)
	}
}

// stripLabel trims the line and removes the exact "<label>: " prefix.
// Alternatives ("|Depends: ...") do not match.
func stripLabel(line string, rel Relation) (string, bool) {
	return strings.CutPrefix(strings.TrimSpace(line), string(rel)+": ")
}
