package story

import "github.com/kestrel-tales/loom/constraint"

// NodeID identifies a node within a single StoryGraph.
type NodeID int

// Node is a beat's payload: its description, the constraints that must
// hold for it to be satisfied under a binding, and the directive template
// rendered when the beat plays. A Node does not carry its own alias list;
// aliases are declared once on the owning StoryGraph.
type Node struct {
	Description         string
	WorldConstraints    []constraint.Constraint
	RelationConstraints []constraint.Relation
	Directive           string
}

// NewNode returns a Node with the given description and directive
// template and no constraints.
func NewNode(description, directiveTemplate string) Node {
	return Node{Description: description, Directive: directiveTemplate}
}

// WithWorldConstraints returns a copy of n with its world constraints set.
func (n Node) WithWorldConstraints(cs ...constraint.Constraint) Node {
	n.WorldConstraints = cs
	return n
}

// WithRelationConstraints returns a copy of n with its relation
// constraints set.
func (n Node) WithRelationConstraints(rs ...constraint.Relation) Node {
	n.RelationConstraints = rs
	return n
}
