// pkg/store/chain.go
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/arc-language/shenv/pkg/core"
)

// Chain tries each store in order and returns the first hit
type Chain struct {
	stores []core.Store
	logger *log.Logger
}

// NewChain creates a chain. A nil logger discards output.
func NewChain(logger *log.Logger, stores ...core.Store) *Chain {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Chain{stores: stores, logger: logger}
}

// Name returns the store name
func (c *Chain) Name() string {
	return "chain"
}

// Resolve asks every store in turn. Only ErrNotFound moves on to the next
// store; any other error stops the search.
func (c *Chain) Resolve(ctx context.Context, name string) (core.Handle, error) {
	if len(c.stores) == 0 {
		return core.Handle{}, &core.ResolutionError{Name: name, Err: fmt.Errorf("%w: no stores configured", core.ErrNotFound)}
	}

	for _, s := range c.stores {
		if err := ctx.Err(); err != nil {
			return core.Handle{}, err
		}

		h, err := s.Resolve(ctx, name)
		if err == nil {
			c.logger.Printf("Resolved '%s' -> %s (%s)", name, h.Root, s.Name())
			return h, nil
		}
		if !errors.Is(err, core.ErrNotFound) {
			return core.Handle{}, asResolutionError(name, s.Name(), err)
		}
		c.logger.Printf("'%s' not in %s store", name, s.Name())
	}

	return core.Handle{}, &core.ResolutionError{Name: name, Err: core.ErrNotFound}
}

// ResolveAll resolves names in order and stops at the first failure.
// Repeated names map to the same handle.
func ResolveAll(ctx context.Context, s core.Store, names []string) ([]core.Handle, error) {
	handles := make([]core.Handle, 0, len(names))
	seen := make(map[string]core.Handle, len(names))
	for _, name := range names {
		if h, ok := seen[name]; ok {
			handles = append(handles, h)
			continue
		}
		h, err := s.Resolve(ctx, name)
		if err != nil {
			return nil, asResolutionError(name, s.Name(), err)
		}
		seen[name] = h
		handles = append(handles, h)
	}
	return handles, nil
}

func asResolutionError(name, store string, err error) error {
	var re *core.ResolutionError
	if errors.As(err, &re) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &core.ResolutionError{Name: name, Store: store, Err: err}
}
