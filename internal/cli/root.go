// internal/cli/root.go
package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/arc-language/aptcache"
	"github.com/arc-language/aptcache/pkg/core"
)

var (
	cfgFile string
	output  string
	debug   bool
	config  *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "aptcache",
	Short: "Query the apt package index",
	Long: `aptcache - apt package index queries

Look packages up in the local apt index, list their dependencies and
recommendations, and fetch their sources.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/aptcache/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output format (text, yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(dependsCmd)
	rootCmd.AddCommand(recommendsCmd)
	rootCmd.AddCommand(sourceCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	logger := newLogger(os.Stderr, level)

	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		logger.Warn("using default config", "err", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if output != "" {
		config.Output = output
	}
	if debug {
		config.Debug = true
	}
	if err := config.Validate(); err != nil {
		return err
	}
	if config.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	cmd.SetContext(withLogger(cmd.Context(), logger))
	return nil
}

// newClient builds a package client from the loaded config
func newClient(cmd *cobra.Command) *aptcache.Client {
	aptCfg := config.AptConfig()
	aptCfg.Logger = loggerFromContext(cmd.Context())
	return aptcache.NewClient(aptCfg, aptcache.WithTrustedDependencies(config.TrustDependencies))
}
