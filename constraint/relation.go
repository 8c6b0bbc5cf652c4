package constraint

// Relation ties two alias roles together: me and other name aliases
// declared on the same graph, and Constraints are evaluated against the
// property map stored for the directed pair (id(me), id(other)) in the
// world snapshot. Absence of a pair yields an empty map — constraints such
// as HasNot can still hold against it.
type Relation struct {
	Me          string
	Other       string
	Constraints []Constraint
}

// NewRelation returns an AliasRelation from me to other with the given
// constraints.
func NewRelation(me, other string, constraints ...Constraint) Relation {
	return Relation{Me: me, Other: other, Constraints: constraints}
}
