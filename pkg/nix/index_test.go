package nix

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ulikunitz/xz"

	"github.com/arc-language/shenv/pkg/core"
)

func testIndex() []IndexEntry {
	return []IndexEntry{
		{Attribute: "glibc.dev", NameVersion: "glibc-2.39-52", StorePath: "/nix/store/" + digest(1) + "-glibc-2.39-52-dev"},
		{Attribute: "vulkan-loader", NameVersion: "vulkan-loader-1.3.268.0", StorePath: "/nix/store/" + digest(2) + "-vulkan-loader-1.3.268.0"},
		{Attribute: "glfw", NameVersion: "glfw-3.4", StorePath: "/nix/store/" + digest(3) + "-glfw-3.4"},
	}
}

func writeIndex(t *testing.T, compress bool) string {
	t.Helper()
	data, err := json.Marshal(testIndex())
	if err != nil {
		t.Fatal(err)
	}

	name := "nix_x86_64_linux.json"
	if compress {
		var buf bytes.Buffer
		w, err := xz.NewWriter(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}
		data = buf.Bytes()
		name += IndexExtXZ
	}

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIndexResolve(t *testing.T) {
	for _, compress := range []bool{false, true} {
		idx, err := LoadIndex(writeIndex(t, compress), nil)
		if err != nil {
			t.Fatalf("LoadIndex(xz=%v) error = %v", compress, err)
		}

		got, err := idx.Resolve(context.Background(), "glibc.dev")
		if err != nil {
			t.Fatalf("Resolve(glibc.dev) error = %v", err)
		}
		want := core.Handle{
			Name:    "glibc.dev",
			Version: "2.39-52",
			Output:  "dev",
			Root:    "/nix/store/" + digest(1) + "-glibc-2.39-52-dev",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Resolve(glibc.dev) xz=%v mismatch (-want +got):\n%s", compress, diff)
		}
	}
}

func TestIndexResolveVersionAndMissing(t *testing.T) {
	idx, err := LoadIndex(writeIndex(t, false), nil)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if _, err := idx.Resolve(ctx, "vulkan-loader@1.3"); err != nil {
		t.Errorf("Resolve(vulkan-loader@1.3) error = %v", err)
	}
	if _, err := idx.Resolve(ctx, "vulkan-loader@1.4"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Resolve(vulkan-loader@1.4) error = %v, want ErrNotFound", err)
	}
	if _, err := idx.Resolve(ctx, "wayland"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Resolve(wayland) error = %v, want ErrNotFound", err)
	}
}

func TestIndexRelocate(t *testing.T) {
	idx, err := LoadIndex(writeIndex(t, false), &Config{Relocate: "/opt/shenv"})
	if err != nil {
		t.Fatal(err)
	}
	h, err := idx.Resolve(context.Background(), "glfw")
	if err != nil {
		t.Fatal(err)
	}
	if want := "/opt/shenv/" + digest(3) + "-glfw-3.4"; h.Root != want {
		t.Errorf("Root = %q, want %q", h.Root, want)
	}
}

func TestReadIndexRejectsBadStorePath(t *testing.T) {
	_, err := ReadIndex(strings.NewReader(`[{"Attribute":"glfw","NameVersion":"glfw-3.4","StorePath":"/tmp/glfw"}]`), nil)
	if err == nil {
		t.Fatal("ReadIndex() accepted an invalid store path")
	}
	_, err = ReadIndex(strings.NewReader(`{not json`), nil)
	if err == nil {
		t.Fatal("ReadIndex() accepted malformed JSON")
	}
}
