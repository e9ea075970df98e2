package shenv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/arc-language/shenv/pkg/core"
	"github.com/arc-language/shenv/pkg/env"
)

var testLocations = Locations{
	CargoHome:  "/home/dev/.cargo",
	RustupHome: "/home/dev/.rustup",
}

// project writes a toolchain descriptor and a manifest into a temp dir
func project(t *testing.T, descriptor, manifest string) *Manifest {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "rust-toolchain.toml"), []byte(descriptor), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, core.DefaultManifest)
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := core.LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}
	return m
}

func newResolver(t *testing.T, loc Locations) *Resolver {
	t.Helper()
	r, err := New(&Config{NoStoreScan: true}, loc)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

const exampleManifest = `
libraries: [a, b]
include: [glibc.dev]
include_extra:
  - '-I"${glib.dev}/include/glib-2.0"'
  - '-I${glib}/lib/glib-2.0/include/'
link: []
packages:
  a: /pkg/a
  b: /pkg/b
  glibc.dev: /pkg/glibc-dev
  glib.dev: /pkg/glib-dev
  glib: /pkg/glib
`

func TestBuild(t *testing.T) {
	m := project(t, "[toolchain]\nchannel = \"nightly-2024-01-01\"\n", exampleManifest)

	snap, err := newResolver(t, testLocations).Build(context.Background(), m)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := map[string]string{
		env.VarToolchainVersion: "nightly-2024-01-01",
		env.VarLibraryPath:      "/pkg/a/lib:/pkg/b/lib",
		env.VarBindgenArgs: `-I"/pkg/glibc-dev/include" ` +
			`-I"/pkg/glib-dev/include/glib-2.0" ` +
			`-I/pkg/glib/lib/glib-2.0/include/`,
		env.VarRustFlags: "",
		env.VarShellHook: "export PATH=\"$PATH\":/home/dev/.cargo/bin\n" +
			"export PATH=\"$PATH\":/home/dev/.rustup/toolchains/nightly-2024-01-01-x86_64-unknown-linux-gnu/bin\n",
	}
	if diff := cmp.Diff(want, snap.Map()); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildIdempotent(t *testing.T) {
	m := project(t, "channel = \"stable\"\n", exampleManifest)
	r := newResolver(t, testLocations)

	first, err := r.Build(context.Background(), m)
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Build(context.Background(), m)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first.Environ(), second.Environ()); diff != "" {
		t.Errorf("Build() not deterministic (-first +second):\n%s", diff)
	}
}

func TestBuildMissingChannel(t *testing.T) {
	m := project(t, "[toolchain]\nprofile = \"minimal\"\n", exampleManifest)

	snap, err := newResolver(t, testLocations).Build(context.Background(), m)
	if snap != nil {
		t.Errorf("Build() returned a snapshot despite the error")
	}
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("Build() error = %v, want ErrMissingField", err)
	}
	var mfe *MissingFieldError
	if !errors.As(err, &mfe) {
		t.Errorf("Build() error = %#v, want MissingFieldError", err)
	}
}

func TestBuildMalformedDescriptor(t *testing.T) {
	m := project(t, "[toolchain\n", exampleManifest)

	snap, err := newResolver(t, testLocations).Build(context.Background(), m)
	if snap != nil || !errors.Is(err, ErrParse) {
		t.Fatalf("Build() = %v, %v; want nil, ErrParse", snap, err)
	}
}

func TestBuildUnresolvable(t *testing.T) {
	for _, manifest := range []string{
		"libraries: [vulkan-loader]\n",
		"include_extra: ['-I${glib.dev}/include']\n",
	} {
		m := project(t, "channel = \"stable\"\n", manifest)

		snap, err := newResolver(t, testLocations).Build(context.Background(), m)
		if snap != nil {
			t.Errorf("Build() returned a snapshot despite the error")
		}
		var re *ResolutionError
		if !errors.As(err, &re) || !errors.Is(err, ErrPackageNotFound) {
			t.Fatalf("Build(%q) error = %v, want ResolutionError", manifest, err)
		}
	}
}

func TestBuildToolchainHomeOverride(t *testing.T) {
	m := project(t, "channel = \"nightly-2024-01-01\"\n", exampleManifest)

	lookup := func(vars map[string]string) env.LookupFunc {
		return func(k string) (string, bool) {
			v, ok := vars[k]
			return v, ok
		}
	}
	base, err := newResolver(t, env.ResolveLocations(lookup(nil), "/home/dev")).Build(context.Background(), m)
	if err != nil {
		t.Fatal(err)
	}
	moved, err := newResolver(t, env.ResolveLocations(lookup(map[string]string{
		env.EnvRustupHome: "/opt/rustup",
	}), "/home/dev")).Build(context.Background(), m)
	if err != nil {
		t.Fatal(err)
	}

	for _, k := range base.Keys() {
		if k != env.VarShellHook && base.Get(k) != moved.Get(k) {
			t.Errorf("%s changed: %q -> %q", k, base.Get(k), moved.Get(k))
		}
	}
	baseHook := strings.Split(base.Hook(), "\n")
	movedHook := strings.Split(moved.Hook(), "\n")
	if baseHook[0] != movedHook[0] {
		t.Errorf("first hook line changed: %q -> %q", baseHook[0], movedHook[0])
	}
	if baseHook[1] == movedHook[1] || !strings.Contains(movedHook[1], "/opt/rustup/toolchains/nightly-2024-01-01-") {
		t.Errorf("second hook line = %q, want /opt/rustup toolchain", movedHook[1])
	}
}

func TestBuildOptionalVariables(t *testing.T) {
	m := project(t, "channel = \"1.75.0\"\n", `
libraries: [vulkan-loader]
link: [libvmi]
libclang: [libclang.lib]
pkg_config: [glfw, vulkan-loader]
triple: aarch64-unknown-linux-gnu
packages:
  vulkan-loader: /pkg/vulkan
  libvmi: /pkg/libvmi
  libclang.lib: /pkg/libclang-lib
  glfw: /pkg/glfw
`)

	snap, err := newResolver(t, testLocations).Build(context.Background(), m)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	for key, want := range map[string]string{
		env.VarRustFlags:     "-L/pkg/libvmi/lib",
		env.VarLibclangPath:  "/pkg/libclang-lib/lib",
		env.VarPkgConfigPath: "/pkg/glfw/lib/pkgconfig:/pkg/vulkan/lib/pkgconfig",
		env.VarLibraryPath:   "/pkg/vulkan/lib",
		env.VarBindgenArgs:   "",
	} {
		if got := snap.Get(key); got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
	if !strings.Contains(snap.Hook(), "toolchains/1.75.0-aarch64-unknown-linux-gnu/bin") {
		t.Errorf("hook %q ignores the manifest triple", snap.Hook())
	}
}

func TestBuildFromNixStore(t *testing.T) {
	storeDir := t.TempDir()
	const digest = "0123456789abcdfghijklmnpqrsvwxyz"
	vulkan := filepath.Join(storeDir, digest+"-vulkan-loader-1.3.268.0")
	if err := os.MkdirAll(vulkan, 0o755); err != nil {
		t.Fatal(err)
	}

	r, err := New(&Config{StoreDir: storeDir}, testLocations)
	if err != nil {
		t.Fatal(err)
	}
	m := project(t, "channel = \"stable\"\n", "libraries: [vulkan-loader]\n")

	snap, err := r.Build(context.Background(), m)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got, want := snap.Get(env.VarLibraryPath), vulkan+"/lib"; got != want {
		t.Errorf("LD_LIBRARY_PATH = %q, want %q", got, want)
	}

	h, err := r.Resolve(context.Background(), nil, "vulkan-loader")
	if err != nil || h.Version != "1.3.268.0" {
		t.Errorf("Resolve(vulkan-loader) = %+v, %v", h, err)
	}
}

func TestBuildRegistryAliases(t *testing.T) {
	storeDir := t.TempDir()
	const digest = "0123456789abcdfghijklmnpqrsvwxyz"
	vulkan := filepath.Join(storeDir, digest+"-vulkan-loader-1.3.268.0")
	if err := os.MkdirAll(vulkan, 0o755); err != nil {
		t.Fatal(err)
	}

	deps := t.TempDir()
	if err := os.MkdirAll(filepath.Join(deps, "vulkan"), 0o755); err != nil {
		t.Fatal(err)
	}
	entry := "name = \"vulkan\"\nlibs = [\"vulkan\"]\n[backends]\nnix = \"vulkan-loader\"\n"
	if err := os.WriteFile(filepath.Join(deps, "vulkan", "index.toml"), []byte(entry), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := New(&Config{StoreDir: storeDir, RegistryDir: deps}, testLocations)
	if err != nil {
		t.Fatal(err)
	}
	m := project(t, "channel = \"stable\"\n", "libraries: [vulkan]\n")

	snap, err := r.Build(context.Background(), m)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got, want := snap.Get(env.VarLibraryPath), vulkan+"/lib"; got != want {
		t.Errorf("LD_LIBRARY_PATH = %q, want %q", got, want)
	}
}

func TestBuildIndexRelocate(t *testing.T) {
	const digest = "0123456789abcdfghijklmnpqrsvwxyz"
	index := filepath.Join(t.TempDir(), "index.json")
	content := `[{"Attribute": "glfw", "NameVersion": "glfw-3.4", "StorePath": "/nix/store/` + digest + `-glfw-3.4"}]`
	if err := os.WriteFile(index, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := New(&Config{IndexPath: index, Relocate: "/opt/nix-cache", NoStoreScan: true}, testLocations)
	if err != nil {
		t.Fatal(err)
	}
	m := project(t, "channel = \"stable\"\n", "libraries: [glfw]\n")

	snap, err := r.Build(context.Background(), m)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got, want := snap.Get(env.VarLibraryPath), "/opt/nix-cache/"+digest+"-glfw-3.4/lib"; got != want {
		t.Errorf("LD_LIBRARY_PATH = %q, want %q", got, want)
	}
}

func TestBuildLiteralDollar(t *testing.T) {
	m := project(t, "channel = \"stable\"\n", `
include_extra:
  - '-Wl,-rpath,$ORIGIN/lib'
  - '-I${glib.dev}/include'
packages:
  glib.dev: /pkg/glib-dev
`)

	snap, err := newResolver(t, testLocations).Build(context.Background(), m)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got, want := snap.Get(env.VarBindgenArgs), `-Wl,-rpath,$ORIGIN/lib -I/pkg/glib-dev/include`; got != want {
		t.Errorf("BINDGEN_EXTRA_CLANG_ARGS = %q, want %q", got, want)
	}

	m = project(t, "channel = \"stable\"\n", "include_extra: ['-I${a}/x -I${b/include']\n")
	if snap, err := newResolver(t, testLocations).Build(context.Background(), m); snap != nil || err == nil {
		t.Errorf("Build() = %v, %v; want error for unterminated placeholder", snap, err)
	}
}
