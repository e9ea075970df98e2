// literal.go
package shenv

import (
	"fmt"
	"strings"
)

// scanLiteral rewrites the ${name} placeholders in lit through ref and
// turns "$$" into "$". Any other '$' is kept as written, so linker tokens
// such as $ORIGIN pass through.
func scanLiteral(lit string, ref func(name string) string) (string, error) {
	if !strings.Contains(lit, "$") {
		return lit, nil
	}

	var b strings.Builder
	for i := 0; i < len(lit); i++ {
		if lit[i] != '$' || i+1 == len(lit) {
			b.WriteByte(lit[i])
			continue
		}
		switch lit[i+1] {
		case '$':
			b.WriteByte('$')
			i++
		case '{':
			end := strings.IndexByte(lit[i+2:], '}')
			if end < 0 {
				return "", fmt.Errorf("unterminated placeholder in %q", lit)
			}
			name := lit[i+2 : i+2+end]
			if name == "" {
				return "", fmt.Errorf("empty placeholder in %q", lit)
			}
			b.WriteString(ref(name))
			i += 2 + end
		default:
			b.WriteByte('$')
		}
	}
	return b.String(), nil
}

// placeholders returns the package names referenced as ${name} in the
// literal flags, in order of appearance.
func placeholders(literals []string) ([]string, error) {
	var names []string
	seen := make(map[string]bool)
	for _, lit := range literals {
		_, err := scanLiteral(lit, func(name string) string {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
			return ""
		})
		if err != nil {
			return nil, err
		}
	}
	return names, nil
}

// expandLiterals substitutes resolved package roots into the literal flags
func expandLiterals(literals []string, handles map[string]Handle) ([]string, error) {
	out := make([]string, len(literals))
	for i, lit := range literals {
		var missing string
		s, err := scanLiteral(lit, func(name string) string {
			h, ok := handles[name]
			if !ok && missing == "" {
				missing = name
			}
			return h.Root
		})
		if err != nil {
			return nil, err
		}
		if missing != "" {
			return nil, fmt.Errorf("placeholder ${%s} in %q was not resolved", missing, lit)
		}
		out[i] = s
	}
	return out, nil
}
