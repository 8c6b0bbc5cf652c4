package loader

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kestrel-tales/loom/internal/trace"
	"github.com/kestrel-tales/loom/story"
)

// LoadGraph parses data into a story.Graph: its aliases, nodes (in
// declaration order, so index i in the JSON becomes story.NodeID(i)),
// start node, strong edges, and weak edges.
func (a *Adapter) LoadGraph(ctx context.Context, data []byte) (*story.Graph, error) {
	op := trace.Begin(ctx, a.logger, "loom.loader.load_graph")

	var raw rawGraph
	if err := a.unmarshal(data, &raw); err != nil {
		op.End(err)
		return nil, err
	}

	g, err := convertGraph(raw)
	if err != nil {
		op.End(err)
		return nil, err
	}

	op.End(nil, slog.Int("nodes", len(raw.Nodes)), slog.Int("aliases", len(raw.Aliases)))
	return g, nil
}

func convertGraph(raw rawGraph) (*story.Graph, error) {
	g := story.NewGraph()

	for _, ra := range raw.Aliases {
		cs, err := convertConstraints(ra.Constraints)
		if err != nil {
			return nil, fmt.Errorf("alias %q: %w", ra.Name, err)
		}
		g.AddAlias(ra.Name, cs...)
	}

	ids := make([]story.NodeID, 0, len(raw.Nodes))
	for i, rn := range raw.Nodes {
		worldCs, err := convertConstraints(rn.WorldConstraints)
		if err != nil {
			return nil, fmt.Errorf("node %d world constraints: %w", i, err)
		}

		node := story.NewNode(rn.Description, rn.Directive).WithWorldConstraints(worldCs...)

		relations, err := convertRelationConstraints(rn.RelationConstraints)
		if err != nil {
			return nil, fmt.Errorf("node %d relation constraints: %w", i, err)
		}
		node = node.WithRelationConstraints(relations...)

		ids = append(ids, g.Add(node))
	}

	if raw.Start < 0 || raw.Start >= len(ids) {
		return nil, fmt.Errorf("%w: start index %d out of range", ErrInternal, raw.Start)
	}
	if err := g.SetStart(ids[raw.Start]); err != nil {
		return nil, err
	}

	for _, re := range raw.Edges {
		if err := rangeCheckEdge(re.From, re.To, len(ids)); err != nil {
			return nil, err
		}
		if err := g.ConnectWeight(ids[re.From], ids[re.To], re.Weight); err != nil {
			return nil, err
		}
	}

	for _, rw := range raw.WeakEdges {
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
