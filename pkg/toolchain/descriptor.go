// pkg/toolchain/descriptor.go
package toolchain

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Descriptor is a pinned compiler toolchain, as declared by rust-toolchain.toml
type Descriptor struct {
	Channel    string   `toml:"channel"`
	Profile    string   `toml:"profile"`
	Components []string `toml:"components"`
	Targets    []string `toml:"targets"`

	Path string `toml:"-"` // File the descriptor was read from
}

// document accepts both the [toolchain] table and a top-level channel key
type document struct {
	Toolchain *Descriptor `toml:"toolchain"`
	Channel   string      `toml:"channel"`
}

// Read loads and validates a descriptor file
func Read(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading toolchain descriptor: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes descriptor contents. path is recorded on the descriptor and
// selects the format: only a file without the .toml extension may hold the
// legacy bare channel name.
func Parse(data []byte, path string) (*Descriptor, error) {
	if filepath.Ext(path) != ".toml" {
		if channel, ok := legacyChannel(data); ok {
			return &Descriptor{Channel: channel, Path: path}, nil
		}
	}

	var doc document
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	desc := doc.Toolchain
	if desc == nil {
		desc = &Descriptor{}
	}
	if desc.Channel == "" {
		desc.Channel = doc.Channel
	}
	desc.Channel = strings.TrimSpace(desc.Channel)
	if desc.Channel == "" {
		return nil, &MissingFieldError{Path: path, Field: "channel"}
	}

	desc.Path = path
	return desc, nil
}

// legacyChannel recognises the old single-line rust-toolchain file, which
// holds nothing but a channel name.
func legacyChannel(data []byte) (string, bool) {
	s := strings.TrimSpace(string(data))
	if s == "" || strings.ContainsAny(s, "=[]\"'#\n\t ") {
		return "", false
	}
	return s, true
}
