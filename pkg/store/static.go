// pkg/store/static.go
package store

import (
	"context"
	"fmt"

	"github.com/arc-language/shenv/pkg/core"
)

// Static resolves names from a fixed name -> root table, such as the
// packages section of a manifest.
type Static struct {
	roots map[string]string
}

// NewStatic creates a static store. The map is copied.
func NewStatic(roots map[string]string) *Static {
	m := make(map[string]string, len(roots))
	for k, v := range roots {
		m[k] = v
	}
	return &Static{roots: m}
}

// Name returns the store name
func (s *Static) Name() string {
	return "static"
}

// Resolve looks the name up verbatim
func (s *Static) Resolve(ctx context.Context, name string) (core.Handle, error) {
	root, ok := s.roots[name]
	if !ok {
		return core.Handle{}, fmt.Errorf("%w: %s", core.ErrNotFound, name)
	}
	ref, err := core.ParseRef(name)
	if err != nil {
		return core.Handle{}, err
	}
	return core.Handle{
		Name:    name,
		Version: ref.Version,
		Output:  ref.Output,
		Root:    root,
	}, nil
}
