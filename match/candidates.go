package match

import (
	"context"
	"log/slog"

	"github.com/kestrel-tales/loom/constraint"
	"github.com/kestrel-tales/loom/entity"
	"github.com/kestrel-tales/loom/internal/trace"
	"github.com/kestrel-tales/loom/story"
	"github.com/kestrel-tales/loom/world"
)

// Candidates runs the three-stage alias-to-entity binding algorithm for g
// under w: per-alias candidate filtering (stage A), Cartesian-product
// enumeration with pairwise-uniqueness (stage B), and path-satisfaction
// filtering against the graph's strong edges (stage C).
//
// Returns ErrConstraintsNotSatisfied when no binding survives stages A or
// C, or when g has no start node. A graph with no declared aliases yields
// a single empty binding when it has at least one node and a start node,
// or an empty (non-error) result when it has no nodes.
func Candidates(g *story.Graph, w world.World, opts ...Option) ([]constraint.AliasMap, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	op := trace.Begin(context.Background(), cfg.logger, "loom.match.candidates")

	aliases := g.Aliases()
	if len(aliases) == 0 {
		if g.Len() == 0 {
			op.End(nil, slog.Int("bindings", 0))
			return nil, nil
		}
		if _, ok := g.Start(); !ok {
			op.End(ErrConstraintsNotSatisfied)
			return nil, ErrConstraintsNotSatisfied
		}
		op.End(nil, slog.Int("bindings", 1))
		return []constraint.AliasMap{constraint.NewAliasMap()}, nil
	}

	perAlias, err := candidateEntities(aliases, w)
	if err != nil {
		op.End(err)
		return nil, err
	}

	bindings := cartesianUnique(aliases, perAlias)
	if len(bindings) == 0 {
		op.End(ErrConstraintsNotSatisfied)
		return nil, ErrConstraintsNotSatisfied
	}

	start, ok := g.Start()
	if !ok {
		op.End(ErrConstraintsNotSatisfied)
		return nil, ErrConstraintsNotSatisfied
	}

	surviving := make([]constraint.AliasMap, 0, len(bindings))
	for _, b := range bindings {
		if isValidAt(g, start, b, w, make(map[story.NodeID]bool)) {
			surviving = append(surviving, b)
		}
	}
	if len(surviving) == 0 {
		op.End(ErrConstraintsNotSatisfied)
		return nil, ErrConstraintsNotSatisfied
	}

	op.End(nil, slog.Int("bindings", len(surviving)))
	return surviving, nil
}

// candidateEntities computes, for each alias, the set of entity IDs whose
// entity satisfies that alias. Returns ErrConstraintsNotSatisfied if any
// alias's set is empty.
func candidateEntities(aliases []constraint.Alias, w world.World) ([][]entity.ID, error) {
	perAlias := make([][]entity.ID, len(aliases))
	for i, a := range aliases {
		var ids []entity.ID
		for _, e := range w.Entities() {
			if a.SatisfiedBy(e) {
				ids = append(ids, e.ID)
			}
		}
		if len(ids) == 0 {
			return nil, ErrConstraintsNotSatisfied
		}
		perAlias[i] = ids
	}
	return perAlias, nil
}

// cartesianUnique extends partial bindings one alias at a time, rejecting
// any pairing whose new entity is already present in the partial binding.
// Alias iteration order is not observable in the result.
func cartesianUnique(aliases []constraint.Alias, perAlias [][]entity.ID) []constraint.AliasMap {
	partials := []constraint.AliasMap{constraint.NewAliasMap()}
	for i, a := range aliases {
		var next []constraint.AliasMap
		for _, partial := range partials {
			for _, id := range perAlias[i] {
				if partial.HasEntity(id) {
					continue
				}
				next = append(next, partial.With(a.Name, id))
			}
		}
		partials = next
		if len(partials) == 0 {
			return nil
		}
	}
	return partials
}
