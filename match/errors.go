// Package match implements the three-stage alias-to-entity binding
// algorithm: per-alias candidate filtering, Cartesian-product-with-
// uniqueness enumeration, and path-satisfaction filtering.
package match

import "errors"

// ErrConstraintsNotSatisfied is returned by Candidates when no binding
// survives stage A or stage C. This is an expected, non-fatal outcome — a
// registry query treats it as "this graph isn't applicable now" and omits
// the graph from its results.
var ErrConstraintsNotSatisfied = errors.New("match: constraints not satisfied")
