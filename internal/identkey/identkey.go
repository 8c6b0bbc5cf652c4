// Package identkey normalizes the identifier strings used as map keys
// throughout loom — alias names, property names, directive tokens — so that
// visually identical Unicode strings authored with different combining
// character sequences compare equal.
package identkey

import "golang.org/x/text/unicode/norm"

// Fold returns the NFC (Unicode Normalization Form C) normalization of s.
// Callers use Fold before storing or looking up a string as a map key
// anywhere loom identifier equality matters (alias names, property names,
// directive lexer tokens).
func Fold(s string) string {
	return norm.NFC.String(s)
}

// Equal reports whether a and b are equal after NFC normalization.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}
