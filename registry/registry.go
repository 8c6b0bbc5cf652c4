// Package registry holds the library of story graphs and dispatches
// queries against a world snapshot.
package registry

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kestrel-tales/loom/constraint"
	"github.com/kestrel-tales/loom/internal/trace"
	"github.com/kestrel-tales/loom/match"
	"github.com/kestrel-tales/loom/story"
	"github.com/kestrel-tales/loom/world"
)

// StoryID is the stable, 0-based position of a graph within a Registry. It
// is the same type world.World uses for its exclusion set.
type StoryID = world.StoryID

// StoryCandidate pairs a graph's ID with the set of alias bindings under
// which it is currently applicable.
type StoryCandidate struct {
	ID              StoryID
	AliasCandidates []constraint.AliasMap
}

// Registry holds story graphs in insertion order; a graph's index in that
// order is its stable StoryID.
type Registry struct {
	cfg    config
	graphs []*story.Graph
}

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Registry{cfg: cfg}
}

// Insert appends g to the registry and returns its assigned StoryID.
func (r *Registry) Insert(g *story.Graph) StoryID {
	id := StoryID(len(r.graphs))
	r.graphs = append(r.graphs, g)
	return id
}

// Get returns the graph registered under id and whether it exists.
func (r *Registry) Get(id StoryID) (*story.Graph, bool) {
	if id < 0 || int(id) >= len(r.graphs) {
		return nil, false
	}
	return r.graphs[id], true
}

// Query evaluates every non-excluded graph against w and returns a
// StoryCandidate for each graph whose match.Candidates call succeeds. A
// graph with no aliases and no nodes succeeds with no bindings, so it
// appears with an empty AliasCandidates list. Graphs that yield
// ErrConstraintsNotSatisfied, and graphs w excludes, are silently omitted
// rather than surfaced as errors.
func (r *Registry) Query(w world.World) []StoryCandidate {
	ctx := trace.WithRequestID(context.Background(), uuid.NewString())
	op := trace.Begin(ctx, r.cfg.logger, "loom.registry.query")

	var out []StoryCandidate
	for i, g := range r.graphs {
		id := StoryID(i)
		if !w.IsIncluded(id) {
			continue
		}
		bindings, err := match.Candidates(g, w, matchOptions(r.cfg)...)
		if err != nil {
			continue
		}
		out = append(out, StoryCandidate{ID: id, AliasCandidates: bindings})
	}

	op.End(nil, slog.Int("candidates", len(out)))
	return out
}

func matchOptions(cfg config) []match.Option {
	if cfg.logger == nil {
		return nil
	}
	return []match.Option{match.WithLogger(cfg.logger)}
}
