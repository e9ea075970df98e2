// pkg/core/package.go
package core

import (
	"fmt"
	"strings"
)

// Handle is a resolved package: an immutable reference into the package
// store. Handles are values and may be shared freely once resolved.
type Handle struct {
	Name    string // Name the handle was requested by (e.g. "glibc.dev")
	Version string // Version if known (e.g. "2.39-52")
	Output  string // Store output (out, dev, lib, ...)
	Root    string // Installation root directory
}

// String returns a human readable form of the handle
func (h Handle) String() string {
	if h.Version != "" {
		return fmt.Sprintf("%s@%s (%s)", h.Name, h.Version, h.Root)
	}
	return fmt.Sprintf("%s (%s)", h.Name, h.Root)
}

// Ref is a parsed package request of the form pname[.output][@version]
type Ref struct {
	Pname   string
	Output  string
	Version string
}

// ParseRef splits a package request into its parts.
// "glibc.dev@2.39" -> {glibc, dev, 2.39}. Only the last dot separates an
// output, and only when it names a known output, so "python3.12" stays whole.
func ParseRef(name string) (Ref, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Ref{}, fmt.Errorf("package name is required")
	}

	var ref Ref
	if i := strings.LastIndexByte(name, '@'); i >= 0 {
		ref.Version = name[i+1:]
		name = name[:i]
		if ref.Version == "" {
			return Ref{}, fmt.Errorf("package %q: empty version after '@'", name)
		}
	}

	if i := strings.LastIndexByte(name, '.'); i > 0 && IsOutput(name[i+1:]) {
		ref.Output = name[i+1:]
		name = name[:i]
	}

	if name == "" {
		return Ref{}, fmt.Errorf("package name is required")
	}
	ref.Pname = name
	return ref, nil
}

// String reassembles the request
func (r Ref) String() string {
	s := r.Pname
	if r.Output != "" {
		s += "." + r.Output
	}
	if r.Version != "" {
		s += "@" + r.Version
	}
	return s
}

// Outputs lists the multiple-output names used by nixpkgs
var Outputs = []string{
	"out", "bin", "dev", "lib", "man", "doc", "info",
	"static", "debug", "devdoc", "py", "modules",
}

// IsOutput reports whether s is a known store output name
func IsOutput(s string) bool {
	for _, o := range Outputs {
		if s == o {
			return true
		}
	}
	return false
}
