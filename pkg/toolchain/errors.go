// pkg/toolchain/errors.go
package toolchain

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates the descriptor is not well-formed TOML
	ErrParse = errors.New("malformed toolchain descriptor")

	// ErrMissingField indicates a required descriptor field is absent
	ErrMissingField = errors.New("missing required field")
)

// ParseError reports a descriptor that could not be decoded
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Path, ErrParse, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// MissingFieldError reports a descriptor without a required field
type MissingFieldError struct {
	Path  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %v %q", e.Path, ErrMissingField, e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
