package constraint

import (
	"github.com/kestrel-tales/loom/entity"
	"github.com/kestrel-tales/loom/internal/identkey"
)

// AliasMap is a bijective assignment of alias names to entity IDs on a
// single story graph's alias list. Alias names are compared after Unicode
// NFC normalization. The zero value is not usable; construct with
// NewAliasMap.
type AliasMap struct {
	bindings map[string]entity.ID
}

// NewAliasMap returns an empty AliasMap.
func NewAliasMap() AliasMap {
	return AliasMap{bindings: make(map[string]entity.ID)}
}

// With returns a copy of m with alias bound to id. m itself is left
// unmodified.
func (m AliasMap) With(alias string, id entity.ID) AliasMap {
	out := NewAliasMap()
	for k, v := range m.bindings {
		out.bindings[k] = v
	}
	out.bindings[identkey.Fold(alias)] = id
	return out
}

// Get returns the entity ID bound to alias and whether it is bound.
func (m AliasMap) Get(alias string) (entity.ID, bool) {
	id, ok := m.bindings[identkey.Fold(alias)]
	return id, ok
}

// Len reports the number of bound aliases.
func (m AliasMap) Len() int {
	return len(m.bindings)
}

// HasEntity reports whether id is already bound to some alias in m — used
// by the Cartesian-product stage to reject pairings that would violate
// bijectivity.
func (m AliasMap) HasEntity(id entity.ID) bool {
	for _, v := range m.bindings {
		if v == id {
			return true
		}
	}
	return false
}

// Equal reports whether m and other bind exactly the same aliases to the
// same entity IDs.
func (m AliasMap) Equal(other AliasMap) bool {
	if len(m.bindings) != len(other.bindings) {
		return false
	}
	for k, v := range m.bindings {
		ov, ok := other.bindings[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}
