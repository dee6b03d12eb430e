// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glenum maps the symbolic names of GL enums, as scripts spell
// them ("GL_TEXTURE_2D"), to their native values.
package glenum

import (
	"log/slog"
	"maps"
	"slices"
	"strings"
)

// Entry is one symbolic name and its native value.
type Entry struct {
	Name  string
	Value uint32
}

// Registry is a name to value table of GL enums.
// The zero value is empty; call [Registry.Register] to populate it.
type Registry struct {
	values map[string]uint32
}

// Default is the process registry used by the script hosts.
var Default = NewRegistry()

// NewRegistry returns a populated registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register()
	return r
}

// Register populates the registry with the golden table.
// Calling it again rebuilds identical entries.
func (r *Registry) Register() {
	r.values = make(map[string]uint32, len(defaultEntries))
	for _, e := range defaultEntries {
		r.values[e.Name] = e.Value
	}
	slog.Debug("registered GL enums", "count", len(r.values))
}

// Lookup returns the value for the given name, or 0 if the name is unknown.
// Since 0 is also a real value (GL_FALSE, GL_POINTS, GL_NO_ERROR), use
// [Registry.Find] where absence matters.
func (r *Registry) Lookup(name string) uint32 {
	return r.values[name]
}

// Find returns the value for the given name and whether it is known.
func (r *Registry) Find(name string) (uint32, bool) {
	v, ok := r.values[name]
	return v, ok
}

// LookupOr returns the bitwise OR of the two looked up values,
// as used for composite clear masks.
func (r *Registry) LookupOr(a, b string) uint32 {
	return r.Lookup(a) | r.Lookup(b)
}

// Len returns the number of names in the registry.
func (r *Registry) Len() int {
	return len(r.values)
}

// Names returns the sorted names that start with the given prefix.
// An empty prefix returns all names.
func (r *Registry) Names(prefix string) []string {
	names := slices.Sorted(maps.Keys(r.values))
	if prefix == "" {
		return names
	}
	return slices.DeleteFunc(names, func(n string) bool {
		return !strings.HasPrefix(n, prefix)
	})
}

// Entries returns the golden table in registration order.
func Entries() []Entry {
	return slices.Clone(defaultEntries)
}
