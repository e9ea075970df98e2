// pkg/env/path.go
package env

import (
	"strings"

	"github.com/arc-language/shenv/pkg/core"
)

// LibraryPath joins <root>/lib of every handle with ':' in input order.
// No handles yields "".
func LibraryPath(handles []core.Handle) string {
	return SearchPath(handles, LibDir)
}

// SearchPath applies tmpl to every handle root and joins the results with ':'
func SearchPath(handles []core.Handle, tmpl Template) string {
	if len(handles) == 0 {
		return ""
	}
	dirs := make([]string, len(handles))
	for i, h := range handles {
		dirs[i] = tmpl(h.Root)
	}
	return strings.Join(dirs, ListSeparator)
}
