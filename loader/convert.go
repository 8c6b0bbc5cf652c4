package loader

import (
	"fmt"

	"github.com/kestrel-tales/loom/constraint"
	"github.com/kestrel-tales/loom/entity"
	"github.com/kestrel-tales/loom/property"
	"github.com/kestrel-tales/loom/world"
)

func convertProperty(r rawProperty) (property.Property, error) {
	switch r.Kind {
	case "string":
		return property.String(r.Str), nil
	case "int":
		return property.Int(r.Int), nil
	case "real":
		return property.Real(r.Real), nil
	default:
		return property.Property{}, fmt.Errorf("%w: %q", ErrUnknownPropertyKind, r.Kind)
	}
}

func convertPropertyMap(raw map[string]rawProperty) (property.Map, error) {
	m := property.NewMap()
	for name, r := range raw {
		v, err := convertProperty(r)
		if err != nil {
			return property.Map{}, fmt.Errorf("property %q: %w", name, err)
		}
		m = m.With(name, v)
	}
	return m, nil
}

func convertConstraint(r rawConstraint) (constraint.Constraint, error) {
	switch r.Type {
	case "has":
		return constraint.NewHas(r.Name), nil
	case "has_not":
		return constraint.NewHasNot(r.Name), nil
	case "equals":
		v, err := convertProperty(r.Value)
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

func convertConstraints(raw []rawConstraint) ([]constraint.Constraint, error) {
	out := make([]constraint.Constraint, 0, len(raw))
	for _, r := range raw {
		c, err := convertConstraint(r)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func convertRelationConstraints(raw []rawRelationConstraint) ([]constraint.Relation, error) {
	out := make([]constraint.Relation, 0, len(raw))
	for _, r := range raw {
		cs, err := convertConstraints(r.Constraints)
		if err != nil {
			return nil, fmt.Errorf("relation %s->%s: %w", r.Me, r.Other, err)
		}
		out = append(out, constraint.NewRelation(r.Me, r.Other, cs...))
	}
	return out, nil
}

func convertWorld(raw rawWorld) (world.World, error) {
	w := world.New()

	for _, re := range raw.Entities {
		props, err := convertPropertyMap(re.Properties)
		if err != nil {
			return world.World{}, fmt.Errorf("entity %d: %w", re.ID, err)
		}
		e := entity.New(entity.ID(re.ID), props)
		if len(re.Exclusory) > 0 {
			excl, err := convertPropertyMap(re.Exclusory)
			if err != nil {
				return world.World{}, fmt.Errorf("entity %d exclusory: %w", re.ID, err)
			}
			e = e.WithExclusory(excl)
		}
		w = w.WithEntity(e)
	}

	for _, rr := range raw.Relations {
		props, err := convertPropertyMap(rr.Properties)
		if err != nil {
			return world.World{}, fmt.Errorf("relation %d->%d: %w", rr.From, rr.To, err)
		}
		w = w.WithRelation(entity.ID(rr.From), entity.ID(rr.To), props)
	}

	global, err := convertPropertyMap(raw.Global)
	if err != nil {
		return world.World{}, fmt.Errorf("global properties: %w", err)
	}
	for _, name := range global.Names() {
		v, _ := global.Get(name)
		w = w.WithProperty(name, v)
	}

	for _, id := range raw.Excluded {
		w = w.WithExcluded(world.StoryID(id))
	}

	return w, nil
}
