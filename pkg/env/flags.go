// pkg/env/flags.go
package env

import "github.com/arc-language/shenv/pkg/core"

// IncludeFlag renders -I"<root>/include". The quotes survive into
// BINDGEN_EXTRA_CLANG_ARGS, which bindgen splits shell-style.
func IncludeFlag(root string) string {
	return `-I"` + root + `/include"`
}

// LinkSearchFlag renders -L<root>/lib
func LinkSearchFlag(root string) string {
	return "-L" + root + "/lib"
}

// LibDir renders <root>/lib
func LibDir(root string) string {
	return root + "/lib"
}

// PkgConfigDir renders <root>/lib/pkgconfig
func PkgConfigDir(root string) string {
	return root + "/lib/pkgconfig"
}

// Compose derives one flag per handle with tmpl, in handle order, then
// appends literals in the order given. With no handles the result is
// exactly the literals and tmpl is never called.
func Compose(handles []core.Handle, tmpl Template, literals ...string) FlagList {
	flags := make(FlagList, 0, len(handles)+len(literals))
	for _, h := range handles {
		flags = append(flags, tmpl(h.Root))
	}
	return append(flags, literals...)
}
