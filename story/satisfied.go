package story

import (
	"github.com/kestrel-tales/loom/constraint"
	"github.com/kestrel-tales/loom/world"
)

// Satisfied reports whether n's world and relation constraints hold under
// binding against w: every world constraint holds on w's global property
// map, and every relation constraint holds on the property map stored for
// the directed pair of entities bound to its two aliases. An unbound alias
// fails the relation constraint check; an absent pair is evaluated as an
// empty map, so constraints such as HasNot can still hold against it.
func Satisfied(n Node, binding constraint.AliasMap, w world.World) bool {
	if !constraint.All(n.WorldConstraints, w.Global()) {
		return false
	}
	for _, rel := range n.RelationConstraints {
		meID, ok := binding.Get(rel.Me)
		if !ok {
			return false
		}
		otherID, ok := binding.Get(rel.Other)
		if !ok {
			return false
		}
		if !constraint.All(rel.Constraints, w.Relation(meID, otherID)) {
			return false
		}
	}
	return true
}
