// pkg/store/aliased.go
package store

import (
	"context"
	"errors"

	"github.com/arc-language/shenv/pkg/core"
	"github.com/arc-language/shenv/pkg/registry"
)

// Resolver maps a canonical package name to a store-specific one
type Resolver interface {
	Resolve(name, backend string) (string, error)
}

// Aliased rewrites names through a Resolver before delegating. Names the
// resolver does not know are passed through unchanged.
type Aliased struct {
	store   core.Store
	aliases Resolver
	backend string
}

// NewAliased wraps s. backend selects the alias column, usually s.Name().
func NewAliased(s core.Store, aliases Resolver, backend string) *Aliased {
	return &Aliased{store: s, aliases: aliases, backend: backend}
}

// Name returns the wrapped store's name
func (a *Aliased) Name() string {
	return a.store.Name()
}

// Resolve aliases the package part of name, keeping any output and version
// suffix, and reports the handle under the requested name. Names without a
// registry entry pass through; any other registry error is returned.
func (a *Aliased) Resolve(ctx context.Context, name string) (core.Handle, error) {
	ref, err := core.ParseRef(name)
	if err != nil {
		return core.Handle{}, err
	}

	target := name
	resolved, err := a.aliases.Resolve(ref.Pname, a.backend)
	switch {
	case err == nil:
		ref.Pname = resolved
		target = ref.String()
	case !errors.Is(err, registry.ErrNoEntry):
		return core.Handle{}, &core.ResolutionError{Name: name, Store: a.Name(), Err: err}
	}

	h, err := a.store.Resolve(ctx, target)
	if err != nil {
		return core.Handle{}, err
	}
	h.Name = name
	return h, nil
}
