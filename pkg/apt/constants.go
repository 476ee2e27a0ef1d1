// pkg/apt/constants.go
package apt

const (
	// DefaultCacheTool is the package-index query tool
	DefaultCacheTool = "apt-cache"

	// DefaultSourceTool fetches source packages
	DefaultSourceTool = "apt-get"
)

// Subcommands understood by the tools
const (
	SubcommandSearch  = "search"
	SubcommandDepends = "depends"
	SubcommandSource  = "source"
)

// Relation is a dependency strength class reported by `apt-cache depends`
type Relation string

const (
	RelationDepends    Relation = "Depends"
	RelationPreDepends Relation = "PreDepends"
	RelationRecommends Relation = "Recommends"
	RelationSuggests   Relation = "Suggests"
	RelationConflicts  Relation = "Conflicts"
	RelationBreaks     Relation = "Breaks"
	RelationReplaces   Relation = "Replaces"
	RelationEnhances   Relation = "Enhances"
)

// AllRelations lists every label apt-cache depends can emit
var AllRelations = []Relation{
	RelationDepends,
	RelationPreDepends,
	RelationRecommends,
	RelationSuggests,
	RelationConflicts,
	RelationBreaks,
	RelationReplaces,
	RelationEnhances,
}

// String returns the label as printed by apt-cache
func (r Relation) String() string {
	return string(r)
}

// IsValid checks if the relation is one apt-cache emits
func (r Relation) IsValid() bool {
	for _, valid := range AllRelations {
		if r == valid {
			return true
		}
	}
	return false
}

// SubcommandShow prints full index records
const SubcommandShow = "show"
