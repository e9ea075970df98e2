// pkg/env/snapshot.go
package env

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Snapshot is the assembled environment: variable name -> value.
// It is immutable; every accessor hands out copies.
type Snapshot struct {
	vars map[string]string
}

func newSnapshot(vars map[string]string) *Snapshot {
	return &Snapshot{vars: vars}
}

// Get returns a variable, or "" when unset
func (s *Snapshot) Get(key string) string {
	return s.vars[key]
}

// Lookup returns a variable and whether it is set
func (s *Snapshot) Lookup(key string) (string, bool) {
	v, ok := s.vars[key]
	return v, ok
}

// Hook returns the startup script
func (s *Snapshot) Hook() string {
	return s.vars[VarShellHook]
}

// Keys returns the variable names in sorted order
func (s *Snapshot) Keys() []string {
	keys := make([]string, 0, len(s.vars))
	for k := range s.vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a copy of the variables
func (s *Snapshot) Map() map[string]string {
	m := make(map[string]string, len(s.vars))
	for k, v := range s.vars {
		m[k] = v
	}
	return m
}

// With returns a new snapshot with key set to value
func (s *Snapshot) With(key, value string) *Snapshot {
	m := s.Map()
	m[key] = value
	return newSnapshot(m)
}

// Environ returns KEY=VALUE pairs sorted by key, ready for exec.Cmd.Env
func (s *Snapshot) Environ() []string {
	keys := s.Keys()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+s.vars[k])
	}
	return out
}

// WriteShell writes an export line for every variable except the hook,
// followed by the hook itself, so the output can be eval'd by a shell.
func (s *Snapshot) WriteShell(w io.Writer) error {
	for _, k := range s.Keys() {
		if k == VarShellHook {
			continue
		}
		if _, err := fmt.Fprintf(w, "export %s=%s\n", k, quote(s.vars[k])); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, s.Hook())
	return err
}

// MarshalYAML encodes the snapshot as a plain mapping
func (s *Snapshot) MarshalYAML() (interface{}, error) {
	return s.Map(), nil
}

// WriteYAML writes the snapshot as a YAML document
func (s *Snapshot) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return enc.Close()
}
