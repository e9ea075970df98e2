// pkg/env/assemble.go
package env

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/arc-language/shenv/pkg/toolchain"
)

// Assembler merges the toolchain pin, search paths and flag lists into a
// Snapshot. It holds only injected configuration and never reads the
// process environment.
type Assembler struct {
	Locations Locations
	Triple    string
}

// NewAssembler creates an assembler. An empty triple selects DefaultTriple.
func NewAssembler(loc Locations, triple string) *Assembler {
	if triple == "" {
		triple = DefaultTriple
	}
	return &Assembler{
		Locations: loc,
		Triple:    triple,
	}
}

// Assemble builds the snapshot. rustFlags is usually empty, which leaves
// RUSTFLAGS set to "".
func (a *Assembler) Assemble(desc *toolchain.Descriptor, libPath string, includeFlags, rustFlags FlagList) *Snapshot {
	return newSnapshot(map[string]string{
		VarToolchainVersion: desc.Channel,
		VarLibraryPath:      libPath,
		VarBindgenArgs:      includeFlags.Join(" "),
		VarRustFlags:        rustFlags.Join(" "),
		VarShellHook:        a.Hook(desc.Channel),
	})
}

// Hook renders the startup script: cargo's bin directory, then the pinned
// toolchain's bin directory, both appended to PATH.
func (a *Assembler) Hook(channel string) string {
	triple := a.Triple
	if triple == "" {
		triple = DefaultTriple
	}

	var b strings.Builder
	for _, dir := range []string{
		a.Locations.BinDir(),
		a.Locations.ToolchainBin(channel, triple),
	} {
		b.WriteString(`export PATH="$PATH":`)
		b.WriteString(quote(dir))
		b.WriteByte('\n')
	}
	return b.String()
}

// quote makes s a single shell word
func quote(s string) string {
	q, err := syntax.Quote(s, syntax.LangBash)
	if err != nil {
		// only NUL bytes are unquotable, and paths cannot hold them
		return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
	}
	return q
}

// ValidateHook checks that a hook is well-formed shell
func ValidateHook(hook string) error {
	_, err := syntax.NewParser().Parse(strings.NewReader(hook), VarShellHook)
	return err
}
