// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arc-language/aptcache/pkg/apt"
)

// Output formats understood by the CLI
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Config holds aptcache configuration
type Config struct {
	CacheTool         string        `yaml:"cache_tool"`
	SourceTool        string        `yaml:"source_tool"`
	Timeout           time.Duration `yaml:"timeout"`
	Debug             bool          `yaml:"debug"`
	TrustDependencies bool          `yaml:"trust_dependencies"`
	Output            string        `yaml:"output"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		CacheTool:  getDefaultCacheTool(),
		SourceTool: apt.DefaultSourceTool,
		Output:     OutputText,
	}
}

// DefaultPath returns $HOME/.config/aptcache/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "aptcache", "config.yaml"), nil
}

// LoadConfig loads configuration from file. Unset fields keep their defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate checks field values
func (c *Config) Validate() error {
	switch c.Output {
	case "", OutputText, OutputYAML:
	default:
		return fmt.Errorf("invalid output format %q (want %s or %s)", c.Output, OutputText, OutputYAML)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("invalid timeout %s", c.Timeout)
	}
	return nil
}

// AptConfig converts c into a pkg/apt client configuration
func (c *Config) AptConfig() *apt.Config {
	return &apt.Config{
		CacheTool:  c.CacheTool,
		SourceTool: c.SourceTool,
		Timeout:    c.Timeout,
		Debug:      c.Debug,
	}
}

func getDefaultCacheTool() string {
	if tool := os.Getenv("APTCACHE_CACHE_TOOL"); tool != "" {
		return tool
	}
	return apt.DefaultCacheTool
}
