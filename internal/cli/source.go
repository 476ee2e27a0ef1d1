// internal/cli/source.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/aptcache/pkg/source"
)

var (
	sourceDir  string
	sourceList bool
)

var sourceCmd = &cobra.Command{
	Use:   "source [package]",
	Short: "Fetch the source package",
	Long: `Run apt-get source for a package inside a directory.

The tool's output and exit status are passed through. With --list, the
fetched files and the members of their tarballs are printed afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: runSource,
}

func init() {
	sourceCmd.Flags().StringVarP(&sourceDir, "dir", "d", ".", "directory to fetch into")
	sourceCmd.Flags().BoolVar(&sourceList, "list", false, "list fetched artifacts and tarball contents")
}

func runSource(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if err := os.MkdirAll(sourceDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", sourceDir, err)
	}

	client := newClient(cmd)
	pkg, err := client.New(ctx, args[0])
	if err != nil {
		return err
	}

	logger.Info("fetching source", "package", pkg, "dir", sourceDir)
	res, err := client.GetSource(ctx, pkg, sourceDir)
	if err != nil {
		return err
	}

	cmd.OutOrStdout().Write(res.Stdout)
	cmd.ErrOrStderr().Write(res.Stderr)
	if !res.Success() {
		return fmt.Errorf("source fetch for %s exited with status %d", pkg, res.ExitCode)
	}

	if sourceList {
		return listSource(cmd, sourceDir)
	}
	return nil
}

func listSource(cmd *cobra.Command, dir string) error {
	artifacts, err := source.Scan(dir)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, a := range artifacts {
		fmt.Fprintf(w, "%-8s %s (%d bytes)\n", a.Kind, a.Name, a.Size)
		if a.Kind != source.KindOrig && a.Kind != source.KindDebian && a.Kind != source.KindNative {
			continue
		}
		entries, err := source.ListArchive(a.Path)
		if err != nil {
			loggerFromContext(cmd.Context()).Warn("cannot read archive", "path", a.Path, "err", err)
			continue
		}
		for _, e := range entries {
			switch {
			case e.Dir:
				fmt.Fprintf(w, "    %s/\n", e.Name)
			case e.Linkname != "":
				fmt.Fprintf(w, "    %s -> %s\n", e.Name, e.Linkname)
			default:
				fmt.Fprintf(w, "    %s\n", e.Name)
			}
		}
	}
	return nil
}
