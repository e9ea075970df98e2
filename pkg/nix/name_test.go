package nix

import "testing"

func TestSplitName(t *testing.T) {
	tests := []struct {
		name                    string
		pname, version, output string
	}{
		{"glibc-2.39-52-dev", "glibc", "2.39-52", "dev"},
		{"glibc-2.39-52", "glibc", "2.39-52", "out"},
		{"vulkan-loader-1.3.268.0", "vulkan-loader", "1.3.268.0", "out"},
		{"libclang-17.0.6-lib", "libclang", "17.0.6", "lib"},
		{"clang-wrapper-17.0.6", "clang-wrapper", "17.0.6", "out"},
		{"rustup-1.27.1", "rustup", "1.27.1", "out"},
		{"source", "source", "", "out"},
		{"hook-dev", "hook-dev", "", "out"},
	}

	for _, tt := range tests {
		pname, version, output := SplitName(tt.name)
		if pname != tt.pname || version != tt.version || output != tt.output {
			t.Errorf("SplitName(%q) = (%q, %q, %q), want (%q, %q, %q)",
				tt.name, pname, version, output, tt.pname, tt.version, tt.output)
		}
	}
}

func TestVersionMatches(t *testing.T) {
	tests := []struct {
		want, have string
		ok         bool
	}{
		{"", "1.3.268.0", true},
		{"1.3.268.0", "1.3.268.0", true},
		{"1.3", "1.3.268.0", true},
		{"2.39", "2.39-52", true},
		{"1.3", "1.30.0", false},
		{"1.3.268.0", "1.3", false},
	}

	for _, tt := range tests {
		if got := versionMatches(tt.want, tt.have); got != tt.ok {
			t.Errorf("versionMatches(%q, %q) = %v, want %v", tt.want, tt.have, got, tt.ok)
		}
	}
}
