// errors.go
package aptcache

import (
	"errors"
	"fmt"

	"github.com/arc-language/aptcache/pkg/apt"
)

var (
	// ErrPackageNotFound indicates the package is not in the package index
	ErrPackageNotFound = errors.New("package not found")

	// ErrInvalidPackage indicates the package name is empty or malformed
	ErrInvalidPackage = errors.New("invalid package")

	// Re-exported from pkg/apt so callers need a single import
	ErrToolNotFound = apt.ErrToolNotFound
	ErrToolFailed   = apt.ErrToolFailed
	ErrNotText      = apt.ErrNotText
	ErrNoResults    = apt.ErrNoResults
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Package string // Package name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err means a package is missing from the index
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPackageNotFound)
}
