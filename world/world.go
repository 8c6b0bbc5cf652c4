// Package world holds the read-only snapshot a query is evaluated against:
// entities, directed relation property maps between them, global
// properties, and the set of story IDs excluded from the query.
package world

import (
	"github.com/kestrel-tales/loom/entity"
	"github.com/kestrel-tales/loom/property"
)

// StoryID is the stable, 0-based position of a story graph within a
// registry. world carries a set of excluded StoryIDs so registry.Query can
// skip graphs the caller does not want considered without evaluating them.
type StoryID int

// relationKey identifies a directed pair of entities.
type relationKey struct {
	from, to entity.ID
}

// World is an immutable, read-only snapshot. Construct with New and extend
// with the With* builder methods, each of which returns a new World and
// leaves the receiver unmodified.
type World struct {
	entities  map[entity.ID]entity.Entity
	relations map[relationKey]property.Map
	global    property.Map
	excluded  map[StoryID]struct{}
}

// New returns an empty World.
func New() World {
	return World{
		entities:  make(map[entity.ID]entity.Entity),
		relations: make(map[relationKey]property.Map),
		global:    property.NewMap(),
		excluded:  make(map[StoryID]struct{}),
	}
}

func (w World) clone() World {
	out := World{
		entities:  make(map[entity.ID]entity.Entity, len(w.entities)),
		relations: make(map[relationKey]property.Map, len(w.relations)),
		global:    w.global,
		excluded:  make(map[StoryID]struct{}, len(w.excluded)),
	}
	for k, v := range w.entities {
		out.entities[k] = v
	}
	for k, v := range w.relations {
		out.relations[k] = v
	}
	for k := range w.excluded {
		out.excluded[k] = struct{}{}
	}
	return out
}

// WithEntity returns a copy of w with e registered under e.ID. A later call
// with the same ID replaces the earlier entity.
func (w World) WithEntity(e entity.Entity) World {
	out := w.clone()
	out.entities[e.ID] = e
	return out
}

// WithRelation returns a copy of w with props stored for the directed pair
// (from, to). A later call with the same pair replaces the earlier map.
func (w World) WithRelation(from, to entity.ID, props property.Map) World {
	out := w.clone()
	out.relations[relationKey{from, to}] = props
	return out
}

// WithProperty returns a copy of w with the global property map extended.
func (w World) WithProperty(name string, v property.Property) World {
	out := w.clone()
	out.global = out.global.With(name, v)
	return out
}

// WithExcluded returns a copy of w with the given StoryIDs added to the
// exclusion set.
func (w World) WithExcluded(ids ...StoryID) World {
	out := w.clone()
	for _, id := range ids {
		out.excluded[id] = struct{}{}
	}
	return out
}

// Entity returns the entity registered under id and whether it exists.
func (w World) Entity(id entity.ID) (entity.Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// Entities returns every registered entity, in unspecified order.
func (w World) Entities() []entity.Entity {
	out := make([]entity.Entity, 0, len(w.entities))
	for _, e := range w.entities {
		out = append(out, e)
	}
	return out
}

// Relation returns the property map stored for the directed pair
// (from, to). Absence of a registered pair yields an empty map, not an
// error — constraints like HasNot can still hold against it.
func (w World) Relation(from, to entity.ID) property.Map {
	if m, ok := w.relations[relationKey{from, to}]; ok {
		return m
	}
	return property.NewMap()
}

// Global returns the world's global property map.
func (w World) Global() property.Map {
	return w.global
}

// IsIncluded reports whether id has not been excluded from this query.
func (w World) IsIncluded(id StoryID) bool {
	_, excluded := w.excluded[id]
	return !excluded
}
