// pkg/core/interface.go
package core

import "context"

// Store resolves package names to installed handles. Implementations only
// look packages up; they never fetch or build anything.
type Store interface {
	// Name returns the store name (e.g., "nix", "static")
	Name() string

	// Resolve returns the handle for a package request.
	// Unknown packages return an error wrapping ErrNotFound.
	Resolve(ctx context.Context, name string) (Handle, error)
}
