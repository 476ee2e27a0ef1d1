// internal/cli/info.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arc-language/aptcache/pkg/core"
)

var infoCmd = &cobra.Command{
	Use:   "info [package]",
	Short: "Show index records for a package",
	Long:  `Display the apt-cache show records for a package, one per indexed version.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	client := newClient(cmd)

	pkg, err := client.New(ctx, args[0])
	if err != nil {
		return err
	}

	infos, err := client.Info(ctx, pkg)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if config.Output == core.OutputYAML {
		return writeYAML(w, infos)
	}

	for i, info := range infos {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Package: %s\n", info.Package)
		fmt.Fprintf(w, "Version: %s\n", info.Version)
		fmt.Fprintf(w, "Architecture: %s\n", info.Architecture)
		if info.Section != "" {
			fmt.Fprintf(w, "Section: %s\n", info.Section)
		}
		if len(info.Depends) > 0 {
			fmt.Fprintf(w, "Depends: %s\n", strings.Join(info.Depends, ", "))
		}
		if len(info.Recommends) > 0 {
			fmt.Fprintf(w, "Recommends: %s\n", strings.Join(info.Recommends, ", "))
		}
		if info.Description != "" {
			fmt.Fprintf(w, "Description: %s\n", strings.SplitN(info.Description, "\n", 2)[0])
		}
	}
	return nil
}
