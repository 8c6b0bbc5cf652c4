// Package constraint implements the constraint algebra over property maps,
// and the alias- and relation-level constructs built on top of it.
package constraint

import (
	"fmt"

	"github.com/kestrel-tales/loom/property"
)

// Kind identifies which constraint variant a Constraint value is.
type Kind uint8

const (
	// KindHas marks a Has constraint.
	KindHas Kind = iota
	// KindHasNot marks a HasNot constraint.
	KindHasNot
	// KindEquals marks an Equals constraint.
	KindEquals
	// KindRange marks an integer IsInRange constraint.
	KindRange
	// KindRangeFloat marks a float IsInRangeFloat constraint.
	KindRangeFloat
)

func (k Kind) String() string {
	switch k {
	case KindHas:
		return "Has"
	case KindHasNot:
		return "HasNot"
	case KindEquals:
		return "Equals"
	case KindRange:
		return "IsInRange"
	case KindRangeFloat:
		return "IsInRangeFloat"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Constraint is an algebraic predicate over a single property.Map,
// parameterized by the property name it examines. Implementations are
// immutable value types.
type Constraint interface {
	// Kind reports which variant this constraint is.
	Kind() Kind

	// Name returns the property name this constraint examines.
	Name() string

	// IsSatisfiedBy reports whether m satisfies this constraint. Range and
	// Equals constraints return false, never an error, when the named
	// property is absent or carries the wrong tag; Has/Equals/either range
	// are false on a missing property, HasNot is true.
	IsSatisfiedBy(m property.Map) bool

	String() string

	// constraint prevents external packages from implementing Constraint.
	constraint()
}

// Has reports whether n is present in the map, regardless of value.
type Has struct{ name string }

// NewHas returns a Has(n) constraint.
func NewHas(n string) Has { return Has{name: n} }

func (c Has) Kind() Kind   { return KindHas }
func (c Has) Name() string { return c.name }
func (c Has) IsSatisfiedBy(m property.Map) bool {
	return m.Has(c.name)
}
func (c Has) String() string { return fmt.Sprintf("Has(%s)", c.name) }
func (Has) constraint()      {}

// HasNot reports whether n is absent from the map.
type HasNot struct{ name string }

// NewHasNot returns a HasNot(n) constraint.
func NewHasNot(n string) HasNot { return HasNot{name: n} }

func (c HasNot) Kind() Kind   { return KindHasNot }
func (c HasNot) Name() string { return c.name }
func (c HasNot) IsSatisfiedBy(m property.Map) bool {
	return !m.Has(c.name)
}
func (c HasNot) String() string { return fmt.Sprintf("HasNot(%s)", c.name) }
func (HasNot) constraint()      {}

// Equals reports whether n maps to a value equal to v. Tags must match;
// cross-tag comparison is always false.
type Equals struct {
	name  string
	value property.Property
}

// NewEquals returns an Equals(n, v) constraint.
func NewEquals(n string, v property.Property) Equals {
	return Equals{name: n, value: v}
}

func (c Equals) Kind() Kind   { return KindEquals }
func (c Equals) Name() string { return c.name }
func (c Equals) IsSatisfiedBy(m property.Map) bool {
	v, ok := m.Get(c.name)
	if !ok {
		return false
	}
	return v.Equal(c.value)
}
func (c Equals) String() string { return fmt.Sprintf("Equals(%s, %s)", c.name, c.value) }
func (Equals) constraint()      {}

// Value returns the value this constraint compares against.
func (c Equals) Value() property.Property { return c.value }

// Range reports whether n maps to an Int within the half-open range
// [Lo, Hi).
type Range struct {
	name   string
	lo, hi int64
}

// NewRange returns an IsInRange(n, [lo, hi)) constraint.
func NewRange(n string, lo, hi int64) Range {
	return Range{name: n, lo: lo, hi: hi}
}

func (c Range) Kind() Kind   { return KindRange }
func (c Range) Name() string { return c.name }
func (c Range) IsSatisfiedBy(m property.Map) bool {
	v, ok := m.Get(c.name)
	if !ok {
		return false
	}
	i, ok := v.IntValue()
	if !ok {
		return false
	}
	return i >= c.lo && i < c.hi
}
func (c Range) String() string {
	return fmt.Sprintf("IsInRange(%s, [%d, %d))", c.name, c.lo, c.hi)
}
func (Range) constraint() {}

// Bounds returns the half-open integer range [lo, hi).
func (c Range) Bounds() (lo, hi int64) { return c.lo, c.hi }

// RangeFloat reports whether n maps to a Real within the half-open range
// [Lo, Hi).
type RangeFloat struct {
	name   string
	lo, hi float64
}

// NewRangeFloat returns an IsInRangeFloat(n, [lo, hi)) constraint.
func NewRangeFloat(n string, lo, hi float64) RangeFloat {
	return RangeFloat{name: n, lo: lo, hi: hi}
}

func (c RangeFloat) Kind() Kind   { return KindRangeFloat }
func (c RangeFloat) Name() string { return c.name }
func (c RangeFloat) IsSatisfiedBy(m property.Map) bool {
	v, ok := m.Get(c.name)
	if !ok {
		return false
	}
	f, ok := v.RealValue()
	if !ok {
		return false
	}
	return f >= c.lo && f < c.hi
}
func (c RangeFloat) String() string {
	return fmt.Sprintf("IsInRangeFloat(%s, [%g, %g))", c.name, c.lo, c.hi)
}
func (RangeFloat) constraint() {}

// Bounds returns the half-open float range [lo, hi).
func (c RangeFloat) Bounds() (lo, hi float64) { return c.lo, c.hi }

// All reports whether every constraint in cs is satisfied by m. An empty
// slice is vacuously satisfied.
func All(cs []Constraint, m property.Map) bool {
	for _, c := range cs {
		if !c.IsSatisfiedBy(m) {
			return false
		}
	}
	return true
}
