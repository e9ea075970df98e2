// shenv.go
package shenv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/arc-language/shenv/pkg/core"
	"github.com/arc-language/shenv/pkg/env"
	"github.com/arc-language/shenv/pkg/nix"
	"github.com/arc-language/shenv/pkg/registry"
	"github.com/arc-language/shenv/pkg/store"
	"github.com/arc-language/shenv/pkg/toolchain"
)

// Re-export core types for convenience
type (
	Config    = core.Config
	Manifest  = core.Manifest
	Handle    = core.Handle
	Snapshot  = env.Snapshot
	Locations = env.Locations
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Resolver turns manifests into environment snapshots
type Resolver struct {
	config    *Config
	locations Locations
	stores    []core.Store
	logger    *log.Logger
}

// New creates a resolver. loc carries the already resolved toolchain
// locations; see env.ResolveLocations.
func New(cfg *Config, loc Locations) (*Resolver, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stderr, "[DEBUG] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	nixCfg := &nix.Config{
		StoreDir: cfg.StoreDir,
		Relocate: cfg.Relocate,
		Debug:    cfg.Debug,
		Logger:   logger,
	}

	var stores []core.Store
	if cfg.IndexPath != "" {
		idx, err := nix.LoadIndex(cfg.IndexPath, nixCfg)
		if err != nil {
			return nil, &Error{Op: "load index", Err: err}
		}
		stores = append(stores, idx)
	}
	if !cfg.NoStoreScan {
		stores = append(stores, nix.NewStore(nixCfg))
	}

	if cfg.RegistryDir != "" {
		reg := registry.New(cfg.RegistryDir)
		for i, s := range stores {
			stores[i] = store.NewAliased(s, reg, "nix")
		}
	}

	logger.Printf("Initialized Resolver")
	logger.Printf("  StoreDir: %s", cfg.StoreDir)
	logger.Printf("  CargoHome: %s", loc.CargoHome)
	logger.Printf("  RustupHome: %s", loc.RustupHome)

	return &Resolver{
		config:    cfg,
		locations: loc,
		stores:    stores,
		logger:    logger,
	}, nil
}

// Toolchain reads the toolchain descriptor at path
func (r *Resolver) Toolchain(path string) (*toolchain.Descriptor, error) {
	desc, err := toolchain.Read(path)
	if err != nil {
		return nil, &Error{Op: "read toolchain", Err: err}
	}
	r.logger.Printf("Toolchain %s (%s) from %s", desc.Channel, desc.Kind(), path)
	return desc, nil
}

// Resolve resolves one package name against the configured stores and the
// manifest's static packages, if m is not nil.
func (r *Resolver) Resolve(ctx context.Context, m *Manifest, name string) (Handle, error) {
	h, err := r.storeFor(m).Resolve(ctx, name)
	if err != nil {
		return Handle{}, &Error{Op: "resolve", Package: name, Err: err}
	}
	return h, nil
}

// Build runs the whole pipeline: read the descriptor once, resolve every
// referenced package, compose the flag lists and assemble the snapshot.
// Any failure aborts the build; no partial snapshot is returned.
func (r *Resolver) Build(ctx context.Context, m *Manifest) (*Snapshot, error) {
	if m == nil {
		return nil, &Error{Op: "build", Err: errors.New("manifest is required")}
	}

	desc, err := r.Toolchain(m.ToolchainPath())
	if err != nil {
		return nil, err
	}

	literalRefs, err := placeholders(m.IncludeExtra)
	if err != nil {
		return nil, &Error{Op: "build", Err: err}
	}

	names := append(m.Names(), literalRefs...)
	resolved, err := store.ResolveAll(ctx, r.storeFor(m), names)
	if err != nil {
		var re *core.ResolutionError
		if errors.As(err, &re) {
			return nil, &Error{Op: "resolve", Package: re.Name, Err: err}
		}
		return nil, &Error{Op: "resolve", Err: err}
	}
	byName := make(map[string]Handle, len(resolved))
	for i, name := range names {
		byName[name] = resolved[i]
	}
	pick := func(list []string) []Handle {
		hs := make([]Handle, len(list))
		for i, name := range list {
			hs[i] = byName[name]
		}
		return hs
	}

	literals, err := expandLiterals(m.IncludeExtra, byName)
	if err != nil {
		return nil, &Error{Op: "build", Err: err}
	}

	libPath := env.LibraryPath(pick(m.Libraries))
	include := env.Compose(pick(m.Include), env.IncludeFlag, literals...)
	rustFlags := env.Compose(pick(m.Link), env.LinkSearchFlag)

	triple := m.Triple
	if triple == "" {
		triple = r.config.Triple
	}

	snap := env.NewAssembler(r.locations, triple).Assemble(desc, libPath, include, rustFlags)
	if len(m.Libclang) > 0 {
		snap = snap.With(env.VarLibclangPath, env.SearchPath(pick(m.Libclang), env.LibDir))
	}
	if len(m.PkgConfig) > 0 {
		snap = snap.With(env.VarPkgConfigPath, env.SearchPath(pick(m.PkgConfig), env.PkgConfigDir))
	}

	r.logger.Printf("Built environment with %d variables from %d packages", len(snap.Keys()), len(resolved))
	return snap, nil
}

// storeFor puts the manifest's static packages in front of the configured stores
func (r *Resolver) storeFor(m *Manifest) core.Store {
	stores := make([]core.Store, 0, len(r.stores)+1)
	if m != nil && len(m.Packages) > 0 {
		stores = append(stores, store.NewStatic(m.Packages))
	}
	stores = append(stores, r.stores...)
	return store.NewChain(r.logger, stores...)
}

// Locations returns the toolchain locations the resolver was created with
func (r *Resolver) Locations() Locations {
	return r.locations
}

// String describes the resolver's stores
func (r *Resolver) String() string {
	names := make([]string, len(r.stores))
	for i, s := range r.stores {
		names[i] = s.Name()
	}
	return fmt.Sprintf("resolver(stores: %v)", names)
}
