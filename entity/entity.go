// Package entity describes the identified property bags a world snapshot is
// built from.
package entity

import "github.com/kestrel-tales/loom/property"

// ID is a caller-assigned identifier, unique within a single world snapshot.
// loom never generates IDs; negative values are accepted by the type but by
// convention never appear in a populated world.
type ID int64

// Entity is an identified bag of properties. properties describe the entity
// positively; exclusory describes properties that mark the entity as
// specialized (see constraint.Alias for how exclusory properties
// interact with alias matching). An entity with an empty exclusory map is
// generic.
type Entity struct {
	ID         ID
	Properties property.Map
	Exclusory  property.Map
}

// New returns a generic Entity with the given properties and no exclusory
// bag.
func New(id ID, properties property.Map) Entity {
	return Entity{ID: id, Properties: properties, Exclusory: property.NewMap()}
}

// WithExclusory returns a copy of e with its exclusory bag set, marking the
// entity as specialized.
func (e Entity) WithExclusory(exclusory property.Map) Entity {
	e.Exclusory = exclusory
	return e
}

// IsSpecialized reports whether e carries any exclusory properties.
func (e Entity) IsSpecialized() bool {
	return e.Exclusory.Len() > 0
}
