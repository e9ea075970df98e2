// pkg/env/types.go
package env

import "strings"

// Variable names set by the assembler
const (
	VarToolchainVersion = "RUSTC_VERSION"
	VarLibraryPath      = "LD_LIBRARY_PATH"
	VarBindgenArgs      = "BINDGEN_EXTRA_CLANG_ARGS"
	VarRustFlags        = "RUSTFLAGS"
	VarShellHook        = "shellHook"
	VarLibclangPath     = "LIBCLANG_PATH"
	VarPkgConfigPath    = "PKG_CONFIG_PATH"
)

// ListSeparator joins search path entries
const ListSeparator = ":"

// DefaultTriple is the host triple toolchains are installed under
const DefaultTriple = "x86_64-unknown-linux-gnu"

// Template derives one string from a package root
type Template func(root string) string

// FlagList is an ordered list of flags. Order is search precedence.
type FlagList []string

// Join concatenates the flags with sep
func (f FlagList) Join(sep string) string {
	return strings.Join(f, sep)
}

// Library represents a found library file
type Library struct {
	Name     string // Library name (e.g., "vulkan")
	Path     string // Absolute path to library file
	Type     string // Extension: ".so", ".a", ".dylib"
	IsStatic bool   // True for .a files
}
