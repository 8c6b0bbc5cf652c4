// Package storyyaml is an alternate, human-authorable serialization of a
// story.Graph, round-tripping its alias list, nodes, strong edges, and
// weak edges through YAML. Unlike the JSON-with-comments loader, this
// package is self-contained: it does not share rawConstraint/rawProperty
// types with the loader package, since the on-disk shapes diverge (a flat
// string value with an explicit value_kind tag, rather than JSON's nested
// object).
package storyyaml

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/kestrel-tales/loom/constraint"
	"github.com/kestrel-tales/loom/property"
	"github.com/kestrel-tales/loom/story"
)

type rawConstraint struct {
	Type      string  `yaml:"type"`
	Name      string  `yaml:"name"`
	Value     string  `yaml:"value,omitempty"`
	ValueKind string  `yaml:"value_kind,omitempty"`
	Lo        int64   `yaml:"lo,omitempty"`
	Hi        int64   `yaml:"hi,omitempty"`
	LoFloat   float64 `yaml:"lo_float,omitempty"`
	HiFloat   float64 `yaml:"hi_float,omitempty"`
}

type rawRelationConstraint struct {
	Me          string          `yaml:"me"`
	Other       string          `yaml:"other"`
	Constraints []rawConstraint `yaml:"constraints,omitempty"`
}

type rawAlias struct {
	Name        string          `yaml:"name"`
	Constraints []rawConstraint `yaml:"constraints,omitempty"`
}

type rawNode struct {
	Description         string                  `yaml:"description"`
	Directive            string                  `yaml:"directive"`
	WorldConstraints     []rawConstraint         `yaml:"world_constraints,omitempty"`
	RelationConstraints  []rawRelationConstraint `yaml:"relation_constraints,omitempty"`
}

type rawEdge struct {
	From   int     `yaml:"from"`
	To     int     `yaml:"to"`
	Weight float64 `yaml:"weight,omitempty"`
}

type rawDoc struct {
	Aliases   []rawAlias `yaml:"aliases,omitempty"`
	Nodes     []rawNode  `yaml:"nodes"`
	Start     int        `yaml:"start"`
	Edges     []rawEdge  `yaml:"edges,omitempty"`
	WeakEdges []rawEdge  `yaml:"weak_edges,omitempty"`
}

// Marshal renders g as YAML.
func Marshal(g *story.Graph) ([]byte, error) {
	doc := toRawDoc(g)
	return yaml.Marshal(doc)
}

// Unmarshal parses data into a new story.Graph.
func Unmarshal(data []byte) (*story.Graph, error) {
	var doc rawDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("storyyaml: %w", err)
	}
	return fromRawDoc(doc)
}

func toRawProperty(v property.Property) (value, kind string) {
	switch v.Kind() {
	case property.KindString:
		s, _ := v.StringValue()
		return s, "string"
	case property.KindInt:
		i, _ := v.IntValue()
		return strconv.FormatInt(i, 10), "int"
	case property.KindReal:
		f, _ := v.RealValue()
		return strconv.FormatFloat(f, 'g', -1, 64), "real"
	default:
		return "", ""
	}
}

func fromRawProperty(value, kind string) (property.Property, error) {
	switch kind {
	case "string":
		return property.String(value), nil
	case "int":
		i, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return property.Property{}, fmt.Errorf("storyyaml: int value %q: %w", value, err)
		}
		return property.Int(i), nil
	case "real":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return property.Property{}, fmt.Errorf("storyyaml: real value %q: %w", value, err)
		}
		return property.Real(f), nil
	default:
		return property.Property{}, fmt.Errorf("%w: %q", ErrUnknownPropertyKind, kind)
	}
}

func toRawConstraint(c constraint.Constraint) rawConstraint {
	switch v := c.(type) {
	case constraint.Has:
		return rawConstraint{Type: "has", Name: v.Name()}
	case constraint.HasNot:
		return rawConstraint{Type: "has_not", Name: v.Name()}
	case constraint.Equals:
		value, kind := toRawProperty(v.Value())
		return rawConstraint{Type: "equals", Name: v.Name(), Value: value, ValueKind: kind}
	case constraint.Range:
		lo, hi := v.Bounds()
		return rawConstraint{Type: "range", Name: v.Name(), Lo: lo, Hi: hi}
	case constraint.RangeFloat:
		lo, hi := v.Bounds()
		return rawConstraint{Type: "range_float", Name: v.Name(), LoFloat: lo, HiFloat: hi}
	default:
		return rawConstraint{Type: "unknown", Name: c.Name()}
	}
}

func fromRawConstraint(r rawConstraint) (constraint.Constraint, error) {
	switch r.Type {
	case "has":
		return constraint.NewHas(r.Name), nil
	case "has_not":
		return constraint.NewHasNot(r.Name), nil
	case "equals":
		v, err := fromRawProperty(r.Value, r.ValueKind)
		if err != nil {
			return nil, fmt.Errorf("equals constraint on %q: %w", r.Name, err)
		}
		return constraint.NewEquals(r.Name, v), nil
	case "range":
		return constraint.NewRange(r.Name, r.Lo, r.Hi), nil
	case "range_float":
		return constraint.NewRangeFloat(r.Name, r.LoFloat, r.HiFloat), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownConstraintType, r.Type)
	}
}

func toRawConstraints(cs []constraint.Constraint) []rawConstraint {
	out := make([]rawConstraint, 0, len(cs))
	for _, c := range cs {
		out = append(out, toRawConstraint(c))
	}
	return out
}

func fromRawConstraints(raw []rawConstraint) ([]constraint.Constraint, error) {
	out := make([]constraint.Constraint, 0, len(raw))
	for _, r := range raw {
		c, err := fromRawConstraint(r)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func toRawRelationConstraints(rs []constraint.Relation) []rawRelationConstraint {
	out := make([]rawRelationConstraint, 0, len(rs))
	for _, r := range rs {
		out = append(out, rawRelationConstraint{
			Me:          r.Me,
			Other:       r.Other,
			Constraints: toRawConstraints(r.Constraints),
		})
	}
	return out
}

func fromRawRelationConstraints(raw []rawRelationConstraint) ([]constraint.Relation, error) {
	out := make([]constraint.Relation, 0, len(raw))
	for _, r := range raw {
		cs, err := fromRawConstraints(r.Constraints)
		if err != nil {
			return nil, fmt.Errorf("relation %s->%s: %w", r.Me, r.Other, err)
		}
		out = append(out, constraint.NewRelation(r.Me, r.Other, cs...))
	}
	return out, nil
}

func toRawDoc(g *story.Graph) rawDoc {
	doc := rawDoc{}

	for _, a := range g.Aliases() {
		doc.Aliases = append(doc.Aliases, rawAlias{
			Name:        a.Name,
			Constraints: toRawConstraints(a.Constraints),
		})
	}

	ids := make([]story.NodeID, g.Len())
	for i := range ids {
		ids[i] = story.NodeID(i)
	}

	for _, id := range ids {
		n, ok := g.Node(id)
		if !ok {
			continue
		}
		doc.Nodes = append(doc.Nodes, rawNode{
			Description:         n.Description,
			Directive:            n.Directive,
			WorldConstraints:     toRawConstraints(n.WorldConstraints),
			RelationConstraints:  toRawRelationConstraints(n.RelationConstraints),
		})
	}

	if start, ok := g.Start(); ok {
		doc.Start = int(start)
	}

	for _, id := range ids {
		for _, child := range g.Successors(id) {
			weight, _ := g.Weight(id, child)
			doc.Edges = append(doc.Edges, rawEdge{From: int(id), To: int(child), Weight: weight})
		}
	}

	for _, id := range ids {
		for _, child := range g.AllSuccessors(id) {
			if _, ok := g.Weight(id, child); ok {
				continue
			}
			doc.WeakEdges = append(doc.WeakEdges, rawEdge{From: int(id), To: int(child)})
		}
	}

	return doc
}

func fromRawDoc(doc rawDoc) (*story.Graph, error) {
	g := story.NewGraph()

	for _, ra := range doc.Aliases {
		cs, err := fromRawConstraints(ra.Constraints)
		if err != nil {
			return nil, fmt.Errorf("alias %q: %w", ra.Name, err)
		}
		g.AddAlias(ra.Name, cs...)
	}

	ids := make([]story.NodeID, 0, len(doc.Nodes))
	for i, rn := range doc.Nodes {
		worldCs, err := fromRawConstraints(rn.WorldConstraints)
		if err != nil {
			return nil, fmt.Errorf("node %d world constraints: %w", i, err)
		}

		node := story.NewNode(rn.Description, rn.Directive).WithWorldConstraints(worldCs...)

		relations, err := fromRawRelationConstraints(rn.RelationConstraints)
		if err != nil {
			return nil, fmt.Errorf("node %d relation constraints: %w", i, err)
		}
		node = node.WithRelationConstraints(relations...)

		ids = append(ids, g.Add(node))
	}

	if doc.Start < 0 || doc.Start >= len(ids) {
		return nil, fmt.Errorf("%w: start index %d out of range", ErrInternal, doc.Start)
	}
	if err := g.SetStart(ids[doc.Start]); err != nil {
		return nil, err
	}

	for _, re := range doc.Edges {
		if err := rangeCheckEdge(re.From, re.To, len(ids)); err != nil {
			return nil, err
		}
		if err := g.ConnectWeight(ids[re.From], ids[re.To], re.Weight); err != nil {
			return nil, err
		}
	}

	for _, rw := range doc.WeakEdges {
		if err := rangeCheckEdge(rw.From, rw.To, len(ids)); err != nil {
			return nil, err
		}
		if err := g.ConnectWeak(ids[rw.From], ids[rw.To]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func rangeCheckEdge(from, to, n int) error {
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: edge %d->%d out of range", ErrInternal, from, to)
	}
	return nil
}
