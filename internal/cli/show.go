// internal/cli/show.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/aptcache/pkg/core"
)

var showCmd = &cobra.Command{
	Use:   "show [package]",
	Short: "Check that a package is in the index",
	Long:  `Look a package up by exact name and print it. Fails if the index does not list it.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	pkg, err := newClient(cmd).New(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if config.Output == core.OutputYAML {
		return writeYAML(cmd.OutOrStdout(), pkg)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Package: %s\n", pkg.Name())
	return err
}
