// Package params provides the ordered parameter set shared by request
// extraction, augmentation and rewriting.
//
// A [Map] keeps its names sorted lexicographically and never replaces a
// value once a name is present: the first value stored for a name wins.
package params

import (
	"iter"
	"slices"
	"strings"
)

// Map is an ordered, duplicate-free set of name/value pairs.
// The zero value is ready to use.
type Map struct {
	names  []string
	values map[string]string
}

// New returns an empty Map.
func New() *Map {
	return &Map{values: make(map[string]string)}
}

// FromPairs builds a Map from alternating name/value strings.
// A trailing name without a value is stored with an empty value.
func FromPairs(kv ...string) *Map {
	m := New()
	for i := 0; i < len(kv); i += 2 {
		var v string
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		m.Add(kv[i], v)
	}

	return m
}

// Add stores value under name and reports whether it was stored.
// An existing name is left untouched and Add returns false.
func (m *Map) Add(name, value string) bool {
	if m.values == nil {
		m.values = make(map[string]string)
	}

	if _, ok := m.values[name]; ok {
		return false
	}

	idx, _ := slices.BinarySearch(m.names, name)
	m.names = slices.Insert(m.names, idx, name)
	m.values[name] = value

	return true
}

// Get returns the value stored for name.
func (m *Map) Get(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[name]
	return v, ok
}

// Has reports whether name is present.
func (m *Map) Has(name string) bool {
	_, ok := m.Get(name)
	return ok
}

// Len returns the number of pairs.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// Names returns a sorted copy of the stored names.
func (m *Map) Names() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.names)
}

// All iterates the pairs in name order.
func (m *Map) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if m == nil {
			return
		}
		for _, name := range m.names {
			if !yield(name, m.values[name]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of m.
func (m *Map) Clone() *Map {
	c := New()
	if m == nil {
		return c
	}
	c.names = slices.Clone(m.names)
	for k, v := range m.values {
		c.values[k] = v
	}

	return c
}

// Merge adds every pair of other that is not already present in m
// and returns the names that were added, in order.
func (m *Map) Merge(other *Map) []string {
	var added []string
	for name, value := range other.All() {
		if m.Add(name, value) {
			added = append(added, name)
		}
	}

	return added
}

// Canonical renders the pairs as "a=1&b=2" in name order without escaping.
// Signature policies hash this form.
func (m *Map) Canonical() string {
	var sb strings.Builder
	for name, value := range m.All() {
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(value)
	}

	return sb.String()
}
