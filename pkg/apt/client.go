// pkg/apt/client.go
package apt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// NewClient creates a new apt command client
func NewClient(cfg *Config) *Client {
	if cfg == nil {
		cfg = &Config{}
	}

	// Set defaults
	if cfg.CacheTool == "" {
		cfg.CacheTool = DefaultCacheTool
	}
	if cfg.SourceTool == "" {
		cfg.SourceTool = DefaultSourceTool
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.WithPrefix("apt")
	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	runner := cfg.Runner
	if runner == nil {
		runner = NewExecRunner()
	}

	c := &Client{
		config: cfg,
		runner: runner,
		logger: logger,
	}

	logger.Debug("initialized apt client",
		"cache_tool", cfg.CacheTool,
		"source_tool", cfg.SourceTool,
		"timeout", cfg.Timeout)

	return c
}

// Query runs `<cache-tool> <subcommand> <pkg>` and applies parse to every
// line of standard output. Matches are returned in output order.
// ErrNoResults is returned when no line matched.
func (c *Client) Query(ctx context.Context, subcommand, pkg string, parse LineParser) ([]string, error) {
	if parse == nil {
		return nil, fmt.Errorf("query %s: nil parser", subcommand)
	}

	args := []string{subcommand, pkg}
	out, err := c.output(ctx, args)
	if err != nil {
		return nil, err
	}

	results, err := ParseLines(out, parse)
	if err != nil {
		return nil, &CommandError{Tool: c.config.CacheTool, Args: args, Err: err}
	}
	c.logger.Debug("query complete", "tool", c.config.CacheTool, "args", args, "results", len(results))

	if len(results) == 0 {
		return nil, ErrNoResults
	}
	return results, nil
}

// Show runs `<cache-tool> show <pkg>` and parses every record printed.
// Several records come back when the index holds several versions.
func (c *Client) Show(ctx context.Context, pkg string) ([]*PackageInfo, error) {
	args := []string{SubcommandShow, pkg}
	out, err := c.output(ctx, args)
	if err != nil {
		return nil, err
	}

	infos, err := ParseStanzas(bytes.NewReader(out))
	if err != nil {
		return nil, &CommandError{Tool: c.config.CacheTool, Args: args, Err: err}
	}
	if len(infos) == 0 {
		return nil, ErrNoResults
	}
	return infos, nil
}

// Source runs `<source-tool> source <pkg>` with dir as the working
// directory. The raw result is returned whatever the exit status; only a
// launch failure is reported as an error.
func (c *Client) Source(ctx context.Context, pkg, dir string) (*Result, error) {
	args := []string{SubcommandSource, pkg}
	res, err := c.run(ctx, c.config.SourceTool, args, WithDir(dir))
	if err != nil {
		return nil, err
	}
	c.logger.Debug("source fetch finished", "tool", c.config.SourceTool, "args", args, "dir", dir, "exit", res.ExitCode)
	return res, nil
}

// Config returns the client configuration
func (c *Client) Config() *Config {
	return c.config
}

// Logger returns the client logger
func (c *Client) Logger() *log.Logger {
	return c.logger
}

// output runs the cache tool and returns stdout once it is known to be
// valid text from a successful exit
func (c *Client) output(ctx context.Context, args []string) ([]byte, error) {
	tool := c.config.CacheTool
	res, err := c.run(ctx, tool, args)
	if err != nil {
		return nil, err
	}

	if res.ExitCode != 0 {
		c.logger.Debug("query failed", "tool", tool, "args", args, "exit", res.ExitCode)
		return nil, &CommandError{
			Tool:     tool,
			Args:     args,
			ExitCode: res.ExitCode,
			Stderr:   string(res.Stderr),
			Err:      ErrToolFailed,
		}
	}

	if !utf8.Valid(res.Stdout) {
		return nil, &CommandError{Tool: tool, Args: args, Err: ErrNotText}
	}
	return res.Stdout, nil
}

func (c *Client) run(ctx context.Context, tool string, args []string, opts ...RunOption) (*Result, error) {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	c.logger.Debug("running", "tool", tool, "args", args)
	res, err := c.runner.Run(ctx, tool, args, opts...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return nil, &CommandError{Tool: tool, Args: args, Err: err}
		}
		return nil, &CommandError{Tool: tool, Args: args, Err: fmt.Errorf("%w: %w", ErrToolNotFound, err)}
	}
	return res, nil
}

// ParseLines applies parse to each line of out and collects the matches.
// The whole output is already in memory, so lines have no length limit.
func ParseLines(out []byte, parse LineParser) ([]string, error) {
	var results []string
	for len(out) > 0 {
		line := out
		if i := bytes.IndexByte(out, '\n'); i >= 0 {
			line, out = out[:i], out[i+1:]
		} else {
			out = nil
		}
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if name, ok := parse(string(line)); ok && name != "" {
			results = append(results, name)
		}
	}
	return results, nil
}
