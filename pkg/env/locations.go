// pkg/env/locations.go
package env

import "path/filepath"

// Override variables for the toolchain locations
const (
	EnvCargoHome  = "CARGO_HOME"
	EnvRustupHome = "RUSTUP_HOME"
)

// LookupFunc reports the value of an environment variable, like os.LookupEnv
type LookupFunc func(key string) (string, bool)

// Locations are the toolchain directories the shell hook puts on PATH
type Locations struct {
	CargoHome  string // Default: <home>/.cargo
	RustupHome string // Default: <home>/.rustup
}

// ResolveLocations applies override precedence: a set, non-empty override
// variable wins, otherwise the default under home is used. lookup may be nil.
func ResolveLocations(lookup LookupFunc, home string) Locations {
	return Locations{
		CargoHome:  override(lookup, EnvCargoHome, filepath.Join(home, ".cargo")),
		RustupHome: override(lookup, EnvRustupHome, filepath.Join(home, ".rustup")),
	}
}

// BinDir is the fixed directory of installed cargo binaries
func (l Locations) BinDir() string {
	return filepath.Join(l.CargoHome, "bin")
}

// ToolchainBin is the bin directory of an installed toolchain
func (l Locations) ToolchainBin(channel, triple string) string {
	return filepath.Join(l.RustupHome, "toolchains", channel+"-"+triple, "bin")
}

func override(lookup LookupFunc, key, def string) string {
	if lookup == nil {
		return def
	}
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}
