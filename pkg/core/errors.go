// pkg/core/errors.go
package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates no store holds the requested package
	ErrNotFound = errors.New("package not found")

	// ErrAmbiguous indicates several versions match and none was pinned
	ErrAmbiguous = errors.New("ambiguous package")
)

// ResolutionError reports a package name the store could not resolve
type ResolutionError struct {
	Name  string // Requested name
	Store string // Store that reported the failure, if any
	Err   error  // Underlying error
}

func (e *ResolutionError) Error() string {
	if e.Store != "" {
		return fmt.Sprintf("resolve %s (%s): %v", e.Name, e.Store, e.Err)
	}
	return fmt.Sprintf("resolve %s: %v", e.Name, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
