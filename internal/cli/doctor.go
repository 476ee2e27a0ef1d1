// internal/cli/doctor.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/aptcache/pkg/apt"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the apt tools are available",
	RunE:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	plat, err := apt.DetectPlatform(config.CacheTool, config.SourceTool)
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Platform: %s/%s\n", plat.OS, plat.Distro)
	fmt.Fprintf(w, "Debian-based: %v\n", plat.Debian())
	fmt.Fprintf(w, "%s: %s\n", config.CacheTool, found(plat.CacheTool))
	fmt.Fprintf(w, "%s: %s\n", config.SourceTool, found(plat.SourceTool))

	if err != nil {
		return err
	}
	if !plat.Ready() {
		return fmt.Errorf("apt tools missing")
	}
	return nil
}

func found(path string) string {
	if path == "" {
		return "not found"
	}
	return path
}
