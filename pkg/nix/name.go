// pkg/nix/name.go
package nix

import (
	"strings"

	"github.com/arc-language/shenv/pkg/core"
)

// SplitName splits a store object name into package name, version and
// output, following the nixpkgs convention that the version starts at the
// first dash not followed by a letter and a multiple-output package carries
// its output as the last dash component:
//
//	glibc-2.39-52-dev   -> glibc, 2.39-52, dev
//	vulkan-loader-1.3.268.0 -> vulkan-loader, 1.3.268.0, out
//	libclang-17.0.6-lib -> libclang, 17.0.6, lib
func SplitName(name string) (pname, version, output string) {
	pname, version = name, ""
	for i := 0; i+1 < len(name); i++ {
		if name[i] == '-' && !isLetter(name[i+1]) {
			pname, version = name[:i], name[i+1:]
			break
		}
	}

	output = DefaultOutput
	if version == "" {
		return pname, version, output
	}
	if i := strings.LastIndexByte(version, '-'); i >= 0 && core.IsOutput(version[i+1:]) {
		output = version[i+1:]
		version = version[:i]
	}
	return pname, version, output
}

// versionMatches reports whether have satisfies a pinned want. A pin
// matches exactly or as a dotted/dashed prefix: 1.3 matches 1.3.268.0.
func versionMatches(want, have string) bool {
	if want == "" || want == have {
		return true
	}
	if !strings.HasPrefix(have, want) {
		return false
	}
	next := have[len(want)]
	return next == '.' || next == '-'
}

func outputMatches(want, have string) bool {
	if want == "" {
		want = DefaultOutput
	}
	return want == have
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
