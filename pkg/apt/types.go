// pkg/apt/types.go
package apt

import (
	"time"

	"github.com/charmbracelet/log"
)

// Config configures the apt command client
type Config struct {
	CacheTool  string        // Default: apt-cache
	SourceTool string        // Default: apt-get
	Timeout    time.Duration // Zero means no timeout
	Debug      bool          // Enable debug logging
	Logger     *log.Logger   // Custom logger (optional)
	Runner     Runner        // Process runner (default: ExecRunner)
}

// Client runs apt query and source commands
type Client struct {
	config *Config
	runner Runner
	logger *log.Logger
}

// Result is the raw outcome of one external process
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success reports whether the process exited with status zero
func (r *Result) Success() bool {
	return r != nil && r.ExitCode == 0
}
