package story

import (
	"github.com/kestrel-tales/loom/constraint"
	"github.com/kestrel-tales/loom/world"
)

// Next returns every strong-or-weak successor of node whose world and
// relation constraints hold under binding against w. This powers
// in-session branching, including back-edges through weak edges, which
// AllSuccessors includes but Successors (used for inheritance) does not.
func (g *Graph) Next(node NodeID, w world.World, binding constraint.AliasMap) []NodeID {
	var out []NodeID
	for _, succ := range g.AllSuccessors(node) {
		n, ok := g.nodes[succ]
		if !ok {
			continue
		}
		if Satisfied(n, binding, w) {
			out = append(out, succ)
		}
	}
	return out
}
