package constraint

import (
	"github.com/kestrel-tales/loom/entity"
	"github.com/kestrel-tales/loom/property"
)

// Alias pairs a role name with the constraints an entity must satisfy to
// bind to that role. Alias strings are case-sensitive.
type Alias struct {
	Name        string
	Constraints []Constraint
}

// NewAlias returns an Alias with the given name and constraints.
func NewAlias(name string, constraints ...Constraint) Alias {
	return Alias{Name: name, Constraints: constraints}
}

// SatisfiedBy reports whether e may bind to this alias.
//
// An entity with an empty exclusory bag is generic and matches whenever its
// positive properties satisfy every constraint. A specialized entity (one
// carrying exclusory properties) additionally requires that this alias
// names, by constraint, every exclusory property the entity carries — this
// is how a specialized entity opts itself out of aliases that never asked
// for its specialization.
func (a Alias) SatisfiedBy(e entity.Entity) bool {
	if e.Exclusory.Len() > 0 && !a.guardsExclusory(e) {
		return false
	}
	for _, c := range a.Constraints {
		if !c.IsSatisfiedBy(e.Properties) && !c.IsSatisfiedBy(e.Exclusory) {
			return false
		}
	}
	return true
}

// guardsExclusory reports whether every exclusory property name on e is
// named by at least one of this alias's constraints, and that constraint
// holds on the exclusory value.
func (a Alias) guardsExclusory(e entity.Entity) bool {
	for _, name := range e.Exclusory.Names() {
		if !a.hasHoldingConstraintFor(name, e.Exclusory) {
			return false
		}
	}
	return true
}

func (a Alias) hasHoldingConstraintFor(name string, m property.Map) bool {
	for _, c := range a.Constraints {
		if c.Name() == name && c.IsSatisfiedBy(m) {
			return true
		}
	}
	return false
}
