// pkg/registry/registry.go
package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrNoEntry indicates the registry has no entry for a name
var ErrNoEntry = errors.New("no registry entry")

// Entry represents a single deps/<name>/index.toml file
type Entry struct {
	Name     string            `toml:"name"`
	Libs     []string          `toml:"libs"`
	Backends map[string]string `toml:"backends"`
}

// Registry maps canonical dependency names (vulkan, glfw) to the names a
// particular store knows them by (vulkan-loader, glfw).
type Registry struct {
	depsDir string
}

// New creates a Registry over a deps directory
func New(depsDir string) *Registry {
	return &Registry{
		depsDir: depsDir,
	}
}

// Resolve takes a canonical package name and a store name,
// returns the store-specific package name.
// e.g. Resolve("vulkan", "nix") -> "vulkan-loader"
func (r *Registry) Resolve(name string, backend string) (string, error) {
	entry, err := r.Load(name)
	if err != nil {
		return "", err
	}

	pkgName, ok := entry.Backends[backend]
	if !ok {
		return "", fmt.Errorf("registry: package '%s' has no entry for backend '%s': %w", name, backend, ErrNoEntry)
	}

	return pkgName, nil
}

// Load reads and parses deps/<name>/index.toml.
func (r *Registry) Load(name string) (*Entry, error) {
	if _, err := os.Stat(r.depsDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("registry: deps directory %s not found: %w", r.depsDir, ErrNoEntry)
	}
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return nil, fmt.Errorf("registry: invalid package name '%s'", name)
	}

	path := filepath.Join(r.depsDir, name, "index.toml")

	data, err := os.ReadFile(path)
	if err != nil {
		// Check if the directory exists, to give a better error message.
		dirPath := filepath.Dir(path)
		if _, statErr := os.Stat(dirPath); statErr == nil {
			return nil, fmt.Errorf("registry: found package '%s' directory, but missing index.toml", name)
		}
		return nil, fmt.Errorf("registry: package '%s': %w", name, ErrNoEntry)
	}

	var entry Entry
	if _, err := toml.Decode(string(data), &entry); err != nil {
		return nil, fmt.Errorf("registry: failed to parse '%s': %w", name, err)
	}
	if entry.Name == "" {
		entry.Name = name
	}

	return &entry, nil
}
