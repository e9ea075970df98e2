// pkg/env/library.go
package env

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/arc-language/shenv/pkg/core"
)

// FindLibrary searches the lib directories of handles, in order, for
// lib<name> with a shared or static extension. Returns nil when absent.
func FindLibrary(handles []core.Handle, name string) *Library {
	for _, h := range handles {
		dir := LibDir(h.Root)
		for _, ext := range LibraryExtensions() {
			filename := "lib" + name + ext
			fullPath := filepath.Join(dir, filename)

			if fileExists(fullPath) {
				return newLibrary(name, fullPath, ext)
			}

			// Versioned: libvulkan.so.1
			matches, _ := filepath.Glob(filepath.Join(dir, filename+".*"))
			if len(matches) > 0 {
				sort.Strings(matches)
				return newLibrary(name, matches[0], ext)
			}
		}
	}
	return nil
}

// Libraries lists the library files directly under a handle's lib directory
func Libraries(h core.Handle) []*Library {
	entries, err := os.ReadDir(LibDir(h.Root))
	if err != nil {
		return nil
	}

	var libs []*Library
	seen := make(map[string]bool)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		for _, ext := range LibraryExtensions() {
			if !strings.HasSuffix(name, ext) && !strings.Contains(name, ext+".") {
				continue
			}
			libName := strings.TrimPrefix(name, "lib")
			libName = strings.Split(libName, ".")[0]
			if !seen[libName+ext] {
				seen[libName+ext] = true
				libs = append(libs, newLibrary(libName, filepath.Join(LibDir(h.Root), name), ext))
			}
			break
		}
	}
	return libs
}

// LibraryExtensions returns file extensions to look for based on OS
func LibraryExtensions() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{".dylib", ".a"}
	case "windows":
		return []string{".dll", ".lib"}
	default:
		return []string{".so", ".a"}
	}
}

func newLibrary(name, path, ext string) *Library {
	return &Library{
		Name:     name,
		Path:     path,
		Type:     ext,
		IsStatic: ext == ".a" || ext == ".lib",
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
