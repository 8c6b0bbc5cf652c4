// Package property implements the tagged scalar value and string-keyed map
// that every higher-level package in loom builds on.
package property

import (
	"fmt"
	"strconv"
)

// Kind identifies which arm of the Property sum type a value occupies.
type Kind uint8

const (
	// KindString marks a Property holding a string.
	KindString Kind = iota
	// KindInt marks a Property holding a 64-bit integer.
	KindInt
	// KindReal marks a Property holding a 64-bit float.
	KindReal
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindInt:
		return "Int"
	case KindReal:
		return "Real"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Property is a tagged scalar value: exactly one of a string, a 64-bit
// integer, or a 64-bit float. The zero value is the empty string.
//
// Equality (via Equal) never coerces across arms: an Int and a Real never
// compare equal even when numerically identical, and neither compares equal
// to a String.
type Property struct {
	kind Kind
	str  string
	i    int64
	f    float64
}

// String constructs a string-valued Property.
func String(s string) Property { return Property{kind: KindString, str: s} }

// Int constructs an integer-valued Property.
func Int(i int64) Property { return Property{kind: KindInt, i: i} }

// Real constructs a float-valued Property.
func Real(f float64) Property { return Property{kind: KindReal, f: f} }

// Kind reports which arm this Property occupies.
func (p Property) Kind() Kind { return p.kind }

// StringValue returns the string payload and whether p is string-kinded.
func (p Property) StringValue() (string, bool) {
	return p.str, p.kind == KindString
}

// IntValue returns the integer payload and whether p is int-kinded.
func (p Property) IntValue() (int64, bool) {
	return p.i, p.kind == KindInt
}

// RealValue returns the float payload and whether p is real-kinded.
func (p Property) RealValue() (float64, bool) {
	return p.f, p.kind == KindReal
}

// Equal reports whether p and other hold the same kind and value.
func (p Property) Equal(other Property) bool {
	if p.kind != other.kind {
		return false
	}
	switch p.kind {
	case KindString:
		return p.str == other.str
	case KindInt:
		return p.i == other.i
	case KindReal:
		return p.f == other.f
	default:
		return false
	}
}

// Display renders the Property in its default textual form: strings
// verbatim, integers and reals via their default base-10 formatting.
func (p Property) Display() string {
	switch p.kind {
	case KindString:
		return p.str
	case KindInt:
		return strconv.FormatInt(p.i, 10)
	case KindReal:
		return strconv.FormatFloat(p.f, 'g', -1, 64)
	default:
		return ""
	}
}

func (p Property) String() string {
	return fmt.Sprintf("%s(%s)", p.kind, p.Display())
}
