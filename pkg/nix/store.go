// pkg/nix/store.go
package nix

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	nixstore "zombiezen.com/go/nix"

	"github.com/arc-language/shenv/pkg/core"
)

// Store resolves packages by scanning a Nix store directory. Only realised
// paths are visible; nothing is built or substituted.
type Store struct {
	config *Config
	logger *log.Logger

	mu      sync.Mutex
	objects map[string][]object // pname -> entries, nil until a scan succeeds
}

// NewStore creates a store resolver
func NewStore(cfg *Config) *Store {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.StoreDir == "" {
		cfg.StoreDir = DefaultStoreDir
	}

	return &Store{
		config: cfg,
		logger: newLogger(cfg),
	}
}

// Name returns the store name
func (s *Store) Name() string {
	return "nix"
}

// Resolve finds the single store object matching pname[.output][@version].
// Several matching objects are ambiguous unless they are the same path.
func (s *Store) Resolve(ctx context.Context, name string) (core.Handle, error) {
	ref, err := core.ParseRef(name)
	if err != nil {
		return core.Handle{}, err
	}

	objects, err := s.load(ctx)
	if err != nil {
		return core.Handle{}, err
	}

	var matches []object
	for _, obj := range objects[ref.Pname] {
		if outputMatches(ref.Output, obj.Output) && versionMatches(ref.Version, obj.Version) {
			matches = append(matches, obj)
		}
	}

	switch len(matches) {
	case 0:
		return core.Handle{}, fmt.Errorf("%w: %s in %s", core.ErrNotFound, name, s.config.StoreDir)
	case 1:
		obj := matches[0]
		return core.Handle{
			Name:    name,
			Version: obj.Version,
			Output:  obj.Output,
			Root:    obj.Path,
		}, nil
	default:
		paths := make([]string, len(matches))
		for i, m := range matches {
			paths[i] = filepath.Base(m.Path)
		}
		return core.Handle{}, fmt.Errorf("%w: %s matches %s; pin a version or list it under packages",
			core.ErrAmbiguous, name, strings.Join(paths, ", "))
	}
}

// load returns the scanned store, scanning on first use. Only a
// successful scan is kept; a failed one is retried by the next caller.
func (s *Store) load(ctx context.Context) (map[string][]object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.objects != nil {
		return s.objects, nil
	}
	objects, err := s.scan(ctx)
	if err != nil {
		return nil, err
	}
	s.objects = objects
	return objects, nil
}

// scan reads the store directory
func (s *Store) scan(ctx context.Context) (map[string][]object, error) {
	s.logger.Printf("Scanning store directory %s", s.config.StoreDir)

	entries, err := os.ReadDir(s.config.StoreDir)
	if err != nil {
		return nil, fmt.Errorf("reading store directory: %w", err)
	}

	objects := make(map[string][]object)
	count := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() {
			// .drv files, .lock files and non-directory outputs hold no lib/include tree
			continue
		}

		sp, err := nixstore.ParseStorePath(filepath.Join(s.config.StoreDir, entry.Name()))
		if err != nil {
			continue
		}
		pname, version, output := SplitName(sp.Name())
		objects[pname] = append(objects[pname], object{
			Path:    string(sp),
			Pname:   pname,
			Version: version,
			Output:  output,
		})
		count++
	}

	for _, objs := range objects {
		sort.Slice(objs, func(i, j int) bool { return objs[i].Path < objs[j].Path })
	}

	s.logger.Printf("Found %d store objects (%d packages)", count, len(objects))
	return objects, nil
}

func newLogger(cfg *Config) *log.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	if cfg.Debug {
		return log.New(os.Stderr, "[DEBUG] ", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}
