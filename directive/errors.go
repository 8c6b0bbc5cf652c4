// Package directive implements the hand-rolled {…} template substitution
// used by story node directives.
package directive

import "fmt"

// AliasError is returned when rendering a directive template fails: a
// missing alias binding, a missing entity, a missing property, or a
// delimiter whose content matches none of the recognised substitution
// forms. It carries the offending token so the caller can report a precise
// diagnostic.
type AliasError struct {
	// Token is the raw text between the { and } delimiters that failed to
	// resolve.
	Token string
	// Reason is a human-readable explanation of why Token failed to
	// resolve.
	Reason string
}

func (e *AliasError) Error() string {
	return fmt.Sprintf("directive: cannot resolve %q: %s", e.Token, e.Reason)
}
