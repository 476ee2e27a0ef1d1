// internal/cli/search.go
package cli

import (
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the package index",
	Long: `Print the names of packages matching a query, in index order.

This is apt-cache's own substring match; use "show" for an exact lookup.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	names, err := newClient(cmd).Search(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if len(names) == 0 {
		loggerFromContext(cmd.Context()).Info("no packages matched", "query", args[0])
	}
	return writeNames(cmd.OutOrStdout(), names)
}
