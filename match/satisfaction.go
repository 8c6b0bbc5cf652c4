package match

import (
	"github.com/kestrel-tales/loom/constraint"
	"github.com/kestrel-tales/loom/story"
	"github.com/kestrel-tales/loom/world"
)

// isValidAt reports whether binding is valid at node: satisfied at node,
// and either node is a leaf (no strong-or-weak successors) or some strong
// successor admits the binding recursively. memo caches the result per
// node for this one binding, since a wide graph may reach the same node
// through several paths from the root.
func isValidAt(g *story.Graph, node story.NodeID, binding constraint.AliasMap, w world.World, memo map[story.NodeID]bool) bool {
	if v, ok := memo[node]; ok {
		return v
	}

	n, ok := g.Node(node)
	if !ok {
		memo[node] = false
		return false
	}

	if !story.Satisfied(n, binding, w) {
		memo[node] = false
		return false
	}

	strongChildren := g.Successors(node)
	isLeaf := len(g.AllSuccessors(node)) == 0

	valid := isLeaf
	if !valid {
		for _, child := range strongChildren {
			if isValidAt(g, child, binding, w, memo) {
				valid = true
				break
			}
		}
	}

	memo[node] = valid
	return valid
}
