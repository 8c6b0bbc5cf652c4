package loader

import (
	"errors"
	"fmt"
)

// ErrInternal is the base error for loader failures: unknown constraint
// types or property kinds, and start or edge indices outside the node
// list. JSON decoding errors are returned as encoding/json reports them,
// not wrapped in ErrInternal.
var ErrInternal = errors.New("loader: internal failure")

// ErrUnknownConstraintType indicates a rawConstraint's Type field did not
// match any of the five constraint.Constraint variants.
var ErrUnknownConstraintType = fmt.Errorf("%w: unknown constraint type", ErrInternal)

// ErrUnknownPropertyKind indicates a rawProperty's Kind field did not
// match "string", "int", or "real".
var ErrUnknownPropertyKind = fmt.Errorf("%w: unknown property kind", ErrInternal)
