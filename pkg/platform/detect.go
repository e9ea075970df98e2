// pkg/platform/detect.go
package platform

import (
	"fmt"
	"os"
	"runtime"

	"github.com/arc-language/shenv/pkg/nix"
)

// Platform represents the detected host
type Platform struct {
	OS       string // linux, darwin
	Arch     string // amd64, arm64, 386, arm
	System   string // Nix system (x86_64-linux)
	Triple   string // Rust host triple (x86_64-unknown-linux-gnu)
	HasStore bool   // Whether a Nix store directory exists
	HasNix   bool   // Whether nix tooling is on PATH
}

// Detect detects the current platform
func Detect(storeDir string) (*Platform, error) {
	system, err := nix.DetectPlatform()
	if err != nil {
		return nil, err
	}
	triple, err := system.Triple()
	if err != nil {
		return nil, err
	}

	p := &Platform{
		OS:     runtime.GOOS,
		Arch:   runtime.GOARCH,
		System: system.String(),
		Triple: triple,
		HasNix: commandExists("nix") || commandExists("nix-store"),
	}
	if info, err := os.Stat(storeDir); err == nil && info.IsDir() {
		p.HasStore = true
	}

	return p, nil
}

// HostTriple returns the Rust host triple of the running system
func HostTriple() (string, error) {
	system, err := nix.DetectPlatform()
	if err != nil {
		return "", err
	}
	return system.Triple()
}

// ResolveTriple turns a --triple value into a Rust host triple. "host"
// detects the running system and a Nix system name (aarch64-darwin) maps to
// its triple. Anything else is taken as a triple already.
func ResolveTriple(value string) (string, error) {
	if value == "host" {
		return HostTriple()
	}
	if system := nix.Platform(value); system.IsValid() {
		return system.Triple()
	}
	return value, nil
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (system: %s, triple: %s, store: %v, nix: %v)",
		p.OS, p.Arch, p.System, p.Triple, p.HasStore, p.HasNix)
}
