// internal/cli/depends.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arc-language/aptcache/pkg/apt"
)

var (
	dependsRelation string
	dependsTrust    bool
)

var dependsCmd = &cobra.Command{
	Use:   "depends [package]",
	Short: "List the direct dependencies of a package",
	Long: `List the packages a package depends on, one level deep.

Examples:
  aptcache depends bash
  aptcache depends bash --relation Suggests
  aptcache depends bash --trust -o yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRelation(cmd, args[0], apt.Relation(dependsRelation))
	},
}

var recommendsCmd = &cobra.Command{
	Use:   "recommends [package]",
	Short: "List the packages a package recommends",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRelation(cmd, args[0], apt.RelationRecommends)
	},
}

func init() {
	dependsCmd.Flags().StringVar(&dependsRelation, "relation", string(apt.RelationDepends),
		fmt.Sprintf("relation to list (%s)", relationNames()))
	for _, c := range []*cobra.Command{dependsCmd, recommendsCmd} {
		c.Flags().BoolVar(&dependsTrust, "trust", false, "skip the index lookup of each listed package")
	}
}

func runRelation(cmd *cobra.Command, name string, rel apt.Relation) error {
	if !rel.IsValid() {
		return fmt.Errorf("unknown relation %q (want one of %s)", rel, relationNames())
	}
	if dependsTrust {
		config.TrustDependencies = true
	}

	client := newClient(cmd)
	pkg, err := client.New(cmd.Context(), name)
	if err != nil {
		return err
	}

	pkgs, err := client.Related(cmd.Context(), pkg, rel)
	if err != nil {
		return err
	}

	return writeRelation(cmd.OutOrStdout(), relationDoc{
		Package:  pkg,
		Relation: rel.String(),
		Packages: pkgs,
	})
}

func relationNames() string {
	names := make([]string, 0, len(apt.AllRelations))
	for _, rel := range apt.AllRelations {
		names = append(names, rel.String())
	}
	return strings.Join(names, ", ")
}
