// errors.go
package shenv

import (
	"fmt"

	"github.com/arc-language/shenv/pkg/core"
	"github.com/arc-language/shenv/pkg/toolchain"
)

// Re-export the error taxonomy so callers need only this package
type (
	ParseError        = toolchain.ParseError
	MissingFieldError = toolchain.MissingFieldError
	ResolutionError   = core.ResolutionError
)

var (
	// ErrParse indicates the toolchain descriptor is malformed
	ErrParse = toolchain.ErrParse

	// ErrMissingField indicates the descriptor lacks the channel
	ErrMissingField = toolchain.ErrMissingField

	// ErrPackageNotFound indicates the package was not found
	ErrPackageNotFound = core.ErrNotFound

	// ErrAmbiguous indicates several store objects match a package
	ErrAmbiguous = core.ErrAmbiguous
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
