package property

import "github.com/kestrel-tales/loom/internal/identkey"

// Map is a string-keyed mapping from property name to Property. Insertion
// order is never observable; a single name maps to at most one Property.
// Names are compared after Unicode NFC normalization, so two visually
// identical names authored with different combining-character sequences
// are the same key.
//
// The zero value is not usable; construct with NewMap.
type Map struct {
	values map[string]Property
}

// NewMap returns an empty Map.
func NewMap() Map {
	return Map{values: make(map[string]Property)}
}

// MapOf builds a Map from a name->Property set. The argument is copied; later
// mutation of vals does not affect the returned Map.
func MapOf(vals map[string]Property) Map {
	m := NewMap()
	for k, v := range vals {
		m.values[identkey.Fold(k)] = v
	}
	return m
}

// With returns a copy of m with name bound to v. m itself is left unmodified.
func (m Map) With(name string, v Property) Map {
	out := NewMap()
	for k, val := range m.values {
		out.values[k] = val
	}
	out.values[identkey.Fold(name)] = v
	return out
}

// Get returns the Property bound to name and whether it is present.
func (m Map) Get(name string) (Property, bool) {
	if m.values == nil {
		return Property{}, false
	}
	v, ok := m.values[identkey.Fold(name)]
	return v, ok
}

// Has reports whether name is bound in m.
func (m Map) Has(name string) bool {
	if m.values == nil {
		return false
	}
	_, ok := m.values[identkey.Fold(name)]
	return ok
}

// Len reports the number of bound names.
func (m Map) Len() int {
	return len(m.values)
}

// Names returns the bound names in unspecified order.
func (m Map) Names() []string {
	names := make([]string, 0, len(m.values))
	for k := range m.values {
		names = append(names, k)
	}
	return names
}
