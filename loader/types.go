// Package loader builds world.World snapshots and story.Graph values from
// JSON-with-comments authored files. It is a non-core collaborator: the
// core packages (property, entity, constraint, world, story, match,
// directive, registry) never import it, and it never mutates a graph or
// world snapshot after construction.
package loader

// rawProperty is the on-disk tagged-value representation: exactly one of
// kind "string", "int", or "real", matching property.Property's sum type.
type rawProperty struct {
	Kind  string  `json:"kind"`
	Str   string  `json:"str,omitempty"`
	Int   int64   `json:"int,omitempty"`
	Real  float64 `json:"real,omitempty"`
}

type rawEntity struct {
	ID         int64                  `json:"id"`
	Properties map[string]rawProperty `json:"properties,omitempty"`
	Exclusory  map[string]rawProperty `json:"exclusory,omitempty"`
}

type rawRelationEntry struct {
	From       int64                  `json:"from"`
	To         int64                  `json:"to"`
	Properties map[string]rawProperty `json:"properties,omitempty"`
}

type rawWorld struct {
	Entities  []rawEntity            `json:"entities,omitempty"`
	Relations []rawRelationEntry     `json:"relations,omitempty"`
	Global    map[string]rawProperty `json:"global,omitempty"`
	Excluded  []int                  `json:"excluded,omitempty"`
}

// rawConstraint mirrors constraint.Constraint's five variants. Type
// selects which fields apply: "has"/"has_not" use Name only, "equals" uses
// Name+Value, "range" uses Name+Lo+Hi (integer), "range_float" uses
// Name+LoFloat+HiFloat.
type rawConstraint struct {
	Type     string      `json:"type"`
	Name     string      `json:"name"`
	Value    rawProperty `json:"value,omitempty"`
	Lo       int64       `json:"lo,omitempty"`
	Hi       int64       `json:"hi,omitempty"`
	LoFloat  float64     `json:"lo_float,omitempty"`
	HiFloat  float64     `json:"hi_float,omitempty"`
}

type rawAlias struct {
	Name        string          `json:"name"`
	Constraints []rawConstraint `json:"constraints,omitempty"`
}

type rawRelationConstraint struct {
	Me          string          `json:"me"`
	Other       string          `json:"other"`
	Constraints []rawConstraint `json:"constraints,omitempty"`
}

type rawNode struct {
	Description         string                  `json:"description"`
	Directive           string                  `json:"directive"`
	WorldConstraints    []rawConstraint         `json:"world_constraints,omitempty"`
	RelationConstraints []rawRelationConstraint `json:"relation_constraints,omitempty"`
}

type rawEdge struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Weight float64 `json:"weight,omitempty"`
}

type rawWeakEdge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type rawGraph struct {
	Aliases   []rawAlias    `json:"aliases,omitempty"`
	Nodes     []rawNode     `json:"nodes"`
	Start     int           `json:"start"`
	Edges     []rawEdge     `json:"edges,omitempty"`
	WeakEdges []rawWeakEdge `json:"weak_edges,omitempty"`
}
