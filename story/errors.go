package story

import (
	"errors"
	"fmt"
)

// ErrInternal is the base error for programmer-error failures in story
// construction (as opposed to CycleDetectedError, which is an expected,
// recoverable outcome of connect/connect_weight).
var ErrInternal = errors.New("internal story graph failure")

// ErrUnknownNode indicates an operation referenced a NodeID not present in
// the graph.
var ErrUnknownNode = fmt.Errorf("%w: unknown node", ErrInternal)

// CycleDetectedError is returned by Connect when adding a strong edge would
// introduce a cycle into the strong-edge subgraph. The edge is not
// retained.
type CycleDetectedError struct {
	From, To NodeID
	// Path lists the node IDs that would form the cycle, starting and
	// ending at the same node. That node is whichever cycle node the
	// detector revisited first; it is not necessarily To.
	Path []NodeID
}

func (e *CycleDetectedError) Error() string {
	return fmt.Sprintf("story: connecting %d -> %d would introduce a cycle: %v", e.From, e.To, e.Path)
}
