// pkg/nix/index.go
package nix

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
	nixstore "zombiezen.com/go/nix"

	"github.com/arc-language/shenv/pkg/core"
)

// Index resolves nixpkgs attributes through a prebuilt attribute index
// (a JSON array of IndexEntry, optionally xz-compressed).
type Index struct {
	config  *Config
	logger  *log.Logger
	entries map[string][]IndexEntry // attribute -> entries
}

// LoadIndex reads an index file. Files ending in .xz are decompressed.
func LoadIndex(path string, cfg *Config) (*Index, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	logger := newLogger(cfg)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	if strings.HasSuffix(path, IndexExtXZ) {
		logger.Printf("Decompressing index %s", path)
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("creating xz reader: %w", err)
		}
		r = xr
	}

	idx, err := ReadIndex(r, cfg)
	if err != nil {
		return nil, fmt.Errorf("loading index %s: %w", path, err)
	}
	return idx, nil
}

// ReadIndex decodes an uncompressed index stream. Entries whose store path
// does not parse are rejected.
func ReadIndex(r io.Reader, cfg *Config) (*Index, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	var list []IndexEntry
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("decoding index: %w", err)
	}

	idx := &Index{
		config:  cfg,
		logger:  newLogger(cfg),
		entries: make(map[string][]IndexEntry, len(list)),
	}
	for _, e := range list {
		if e.Attribute == "" {
			return nil, fmt.Errorf("index entry for %s has no attribute", e.StorePath)
		}
		if _, err := nixstore.ParseStorePath(e.StorePath); err != nil {
			return nil, fmt.Errorf("index entry %s: %w", e.Attribute, err)
		}
		idx.entries[e.Attribute] = append(idx.entries[e.Attribute], e)
	}

	idx.logger.Printf("Loaded index with %d attributes", len(idx.entries))
	return idx, nil
}

// Name returns the store name
func (i *Index) Name() string {
	return "nix-index"
}

// Resolve looks up attribute[.output][@version]
func (i *Index) Resolve(ctx context.Context, name string) (core.Handle, error) {
	ref, err := core.ParseRef(name)
	if err != nil {
		return core.Handle{}, err
	}
	attr := ref.Pname
	if ref.Output != "" {
		attr += "." + ref.Output
	}

	var found []IndexEntry
	for _, e := range i.entries[attr] {
		_, version, _ := SplitName(e.NameVersion)
		if versionMatches(ref.Version, version) {
			found = append(found, e)
		}
	}

	switch len(found) {
	case 0:
		return core.Handle{}, fmt.Errorf("%w: attribute %s not in index", core.ErrNotFound, name)
	case 1:
	default:
		return core.Handle{}, fmt.Errorf("%w: attribute %s has %d index entries", core.ErrAmbiguous, name, len(found))
	}

	e := found[0]
	sp, _ := nixstore.ParseStorePath(e.StorePath)
	_, version, output := SplitName(sp.Name())
	if ref.Output != "" {
		output = ref.Output
	}

	root := e.StorePath
	if i.config.Relocate != "" {
		root = filepath.Join(i.config.Relocate, filepath.Base(e.StorePath))
	}

	return core.Handle{
		Name:    name,
		Version: version,
		Output:  output,
		Root:    root,
	}, nil
}
