package storyyaml

import (
	"errors"
	"fmt"
)

// ErrInternal is the base error for storyyaml failures: unknown
// constraint/property kinds, or references to undeclared nodes. YAML
// decoding errors are wrapped with a "storyyaml:" prefix, not in
// ErrInternal.
var ErrInternal = errors.New("storyyaml: internal failure")

// ErrUnknownConstraintType indicates a rawConstraint's Type field did not
// match any of the five constraint.Constraint variants.
var ErrUnknownConstraintType = fmt.Errorf("%w: unknown constraint type", ErrInternal)

// ErrUnknownPropertyKind indicates a rawConstraint's ValueKind field did
// not match "string", "int", or "real".
var ErrUnknownPropertyKind = fmt.Errorf("%w: unknown property kind", ErrInternal)
