// pkg/core/manifest.go
package core

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultManifest is the manifest file looked up in the working directory
const DefaultManifest = "shenv.yaml"

// DefaultToolchainFile is the descriptor used when a manifest names none
const DefaultToolchainFile = "rust-toolchain.toml"

// Manifest declares a development shell: which packages feed which
// variables. List order is significant and preserved end to end.
type Manifest struct {
	Toolchain    string            `yaml:"toolchain"`     // Descriptor path, relative to the manifest
	Libraries    []string          `yaml:"libraries"`     // LD_LIBRARY_PATH
	Include      []string          `yaml:"include"`       // -I"<root>/include"
	IncludeExtra []string          `yaml:"include_extra"` // Literal flags, may use ${pkg}
	Link         []string          `yaml:"link"`          // RUSTFLAGS -L<root>/lib
	Libclang     []string          `yaml:"libclang"`      // LIBCLANG_PATH
	PkgConfig    []string          `yaml:"pkg_config"`    // PKG_CONFIG_PATH
	Packages     map[string]string `yaml:"packages"`      // Static name -> root
	Triple       string            `yaml:"triple"`

	dir string
}

// LoadManifest reads a manifest file. Relative paths inside it are resolved
// against the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		path = DefaultManifest
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	m.dir = filepath.Dir(abs)

	return m, nil
}

// ParseManifest decodes manifest YAML. Unknown keys are rejected so typos
// in list names do not silently drop packages.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	for name, root := range m.Packages {
		if root == "" {
			return nil, fmt.Errorf("parsing manifest: package %q has an empty root", name)
		}
	}

	return &m, nil
}

// ToolchainPath returns the descriptor path, resolved against the manifest
func (m *Manifest) ToolchainPath() string {
	p := m.Toolchain
	if p == "" {
		p = DefaultToolchainFile
	}
	if filepath.IsAbs(p) || m.dir == "" {
		return p
	}
	return filepath.Join(m.dir, p)
}

// Names returns every package name the manifest references directly,
// first occurrence order, without duplicates.
func (m *Manifest) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, list := range [][]string{m.Libraries, m.Include, m.Link, m.Libclang, m.PkgConfig} {
		for _, name := range list {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
