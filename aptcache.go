// aptcache.go
package aptcache

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/arc-language/aptcache/pkg/apt"
)

// Re-export apt types for convenience
type (
	Config      = apt.Config
	Result      = apt.Result
	Relation    = apt.Relation
	Runner      = apt.Runner
	LineParser  = apt.LineParser
	PackageInfo = apt.PackageInfo
)

// Re-export relation constants
const (
	RelationDepends    = apt.RelationDepends
	RelationPreDepends = apt.RelationPreDepends
	RelationRecommends = apt.RelationRecommends
	RelationSuggests   = apt.RelationSuggests
	RelationConflicts  = apt.RelationConflicts
	RelationBreaks     = apt.RelationBreaks
	RelationReplaces   = apt.RelationReplaces
	RelationEnhances   = apt.RelationEnhances
)

// Client looks packages up in the local package index
type Client struct {
	apt   *apt.Client
	trust bool
}

// Option configures a Client
type Option func(*Client)

// WithTrustedDependencies makes Depends and friends accept the names printed
// by `apt-cache depends` as-is, skipping the per-name search round-trip.
func WithTrustedDependencies(trust bool) Option {
	return func(c *Client) {
		c.trust = trust
	}
}

// NewClient creates a client. A nil config uses the system apt tools.
func NewClient(cfg *Config, opts ...Option) *Client {
	c := &Client{apt: apt.NewClient(cfg)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	defaultOnce   sync.Once
	defaultClient *Client
)

// Default returns a shared client using the system apt tools
func Default() *Client {
	defaultOnce.Do(func() {
		defaultClient = NewClient(nil)
	})
	return defaultClient
}

// New looks name up with the default client
func New(ctx context.Context, name string) (Package, error) {
	return Default().New(ctx, name)
}

// New returns the package called name if `apt-cache search` lists it.
// The match is exact and case-sensitive.
func (c *Client) New(ctx context.Context, name string) (Package, error) {
	if strings.TrimSpace(name) == "" {
		return Package{}, &Error{Op: "lookup", Package: name, Err: fmt.Errorf("%w: %w", ErrPackageNotFound, ErrInvalidPackage)}
	}

	names, err := c.apt.Query(ctx, apt.SubcommandSearch, name, apt.Search)
	if err != nil && !errors.Is(err, apt.ErrNoResults) {
		return Package{}, &Error{Op: "lookup", Package: name, Err: err}
	}
	if !slices.Contains(names, name) {
		return Package{}, &Error{Op: "lookup", Package: name, Err: ErrPackageNotFound}
	}
	return Package{name: name}, nil
}

// Depends returns the packages p depends on, one level deep.
// A nil slice with a nil error means p has no dependencies.
func (c *Client) Depends(ctx context.Context, p Package) ([]Package, error) {
	return c.Related(ctx, p, apt.RelationDepends)
}

// Recommends returns the packages p recommends, one level deep.
func (c *Client) Recommends(ctx context.Context, p Package) ([]Package, error) {
	return c.Related(ctx, p, apt.RelationRecommends)
}

// Related returns the packages linked to p by rel in `apt-cache depends`
// output. Every name is looked up again with New unless the client trusts
// dependencies; the first failed lookup fails the whole call.
func (c *Client) Related(ctx context.Context, p Package, rel Relation) ([]Package, error) {
	op := strings.ToLower(rel.String())
	if p.name == "" {
		return nil, &Error{Op: op, Err: ErrInvalidPackage}
	}
	if !rel.IsValid() {
		return nil, &Error{Op: op, Package: p.name, Err: fmt.Errorf("unknown relation %q", rel)}
	}

	names, err := c.apt.Query(ctx, apt.SubcommandDepends, p.name, apt.ParserFor(rel))
	if errors.Is(err, apt.ErrNoResults) {
		return nil, nil
	}
	if err != nil {
		return nil, &Error{Op: op, Package: p.name, Err: err}
	}

	pkgs := make([]Package, 0, len(names))
	for _, name := range names {
		if c.trust {
			pkgs = append(pkgs, Package{name: name})
			continue
		}
		dep, err := c.New(ctx, name)
		if err != nil {
			return nil, &Error{Op: op, Package: p.name, Err: err}
		}
		pkgs = append(pkgs, dep)
	}
	c.apt.Logger().Debug("resolved relation", "package", p.name, "relation", rel, "count", len(pkgs))
	return pkgs, nil
}

// GetSource runs `apt-get source` for p inside dir and hands back the raw
// process result. Nothing checks that files were produced.
func (c *Client) GetSource(ctx context.Context, p Package, dir string) (*Result, error) {
	if p.name == "" {
		return nil, &Error{Op: "source", Err: ErrInvalidPackage}
	}
	res, err := c.apt.Source(ctx, p.name, dir)
	if err != nil {
		return nil, &Error{Op: "source", Package: p.name, Err: err}
	}
	return res, nil
}

// Info returns the index records `apt-cache show` prints for p, in the
// order printed
func (c *Client) Info(ctx context.Context, p Package) ([]*PackageInfo, error) {
	if p.name == "" {
		return nil, &Error{Op: "info", Err: ErrInvalidPackage}
	}
	infos, err := c.apt.Show(ctx, p.name)
	if errors.Is(err, apt.ErrNoResults) {
		return nil, &Error{Op: "info", Package: p.name, Err: ErrPackageNotFound}
	}
	if err != nil {
		return nil, &Error{Op: "info", Package: p.name, Err: err}
	}
	return infos, nil
}

// Search returns the raw package names `apt-cache search` lists for query.
// Unlike New, this is the index's substring match.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &Error{Op: "search", Err: ErrInvalidPackage}
	}
	names, err := c.apt.Query(ctx, apt.SubcommandSearch, query, apt.Search)
	if errors.Is(err, apt.ErrNoResults) {
		return nil, nil
	}
	if err != nil {
		return nil, &Error{Op: "search", Package: query, Err: err}
	}
	return names, nil
}

// Apt returns the underlying command client
func (c *Client) Apt() *apt.Client {
	return c.apt
}
