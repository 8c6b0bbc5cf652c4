package story

import (
	"context"
	"log/slog"

	"github.com/kestrel-tales/loom/constraint"
	"github.com/kestrel-tales/loom/internal/trace"
)

// Graph is a strict DAG of strong edges between Nodes, plus a parallel
// overlay of weak edges that may close cycles. It also carries the
// graph-scoped alias declarations.
//
// Graph is built up through Add/Connect/ConnectWeak and is read-only once
// queries begin; it is then safe to share by reference across goroutines,
// as a consequence of immutability rather than a concurrency feature.
type Graph struct {
	cfg graphConfig

	aliases []constraint.Alias

	nodes   map[NodeID]Node
	strong  map[NodeID][]NodeID
	weak    map[NodeID][]NodeID
	weights map[edgeKey]float64

	start    NodeID
	hasStart bool
	nextID   NodeID
}

type edgeKey struct {
	from, to NodeID
}

// NewGraph returns an empty Graph.
func NewGraph(opts ...Option) *Graph {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Graph{
		cfg:     cfg,
		nodes:   make(map[NodeID]Node),
		strong:  make(map[NodeID][]NodeID),
		weak:    make(map[NodeID][]NodeID),
		weights: make(map[edgeKey]float64),
	}
}

// AddAlias appends a graph-scoped alias declaration. Duplicate names are
// not rejected; callers should avoid them, since the matcher treats each
// declared alias independently and would produce degenerate bindings.
func (g *Graph) AddAlias(name string, constraints ...constraint.Constraint) {
	g.aliases = append(g.aliases, constraint.NewAlias(name, constraints...))
}

// Aliases returns the graph's declared aliases, in declaration order.
func (g *Graph) Aliases() []constraint.Alias {
	return g.aliases
}

// Add inserts n and returns its assigned NodeID.
func (g *Graph) Add(n Node) NodeID {
	id := g.nextID
	g.nextID++
	g.nodes[id] = n
	op := trace.Begin(context.Background(), g.cfg.logger, "loom.story.add", slog.Int("node", int(id)))
	op.End(nil)
	return id
}

// Node returns the node registered under id and whether it exists.
func (g *Graph) Node(id NodeID) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Len reports the number of nodes added to the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// SetStart marks id as the graph's root. Returns ErrUnknownNode if id has
// not been added.
func (g *Graph) SetStart(id NodeID) error {
	if _, ok := g.nodes[id]; !ok {
		return ErrUnknownNode
	}
	g.start = id
	g.hasStart = true
	return nil
}

// Start returns the graph's root node and whether one has been set. An
// unset start means the graph yields no candidates.
func (g *Graph) Start() (NodeID, bool) {
	return g.start, g.hasStart
}

// Connect adds a strong edge from parent to child with weight 0, then
// topologically validates the strong subgraph. On failure the edge is not
// retained and a *CycleDetectedError is returned.
func (g *Graph) Connect(parent, child NodeID) error {
	return g.ConnectWeight(parent, child, 0)
}

// ConnectWeight adds a strong edge from parent to child carrying an opaque
// weight, then topologically validates the strong subgraph. On failure the
// edge is not retained and a *CycleDetectedError is returned. Weak connects
// (ConnectWeak) never fail this way.
func (g *Graph) ConnectWeight(parent, child NodeID, weight float64) error {
	if _, ok := g.nodes[parent]; !ok {
		return ErrUnknownNode
	}
	if _, ok := g.nodes[child]; !ok {
		return ErrUnknownNode
	}

	op := trace.Begin(context.Background(), g.cfg.logger, "loom.story.connect",
		slog.Int("parent", int(parent)), slog.Int("child", int(child)))

	g.strong[parent] = append(g.strong[parent], child)
	g.weights[edgeKey{parent, child}] = weight

	if path, cyclic := detectCycle(g.strong); cyclic {
		g.strong[parent] = g.strong[parent][:len(g.strong[parent])-1]
		delete(g.weights, edgeKey{parent, child})
		err := &CycleDetectedError{From: parent, To: child, Path: path}
		op.End(err)
		return err
	}

	op.End(nil)
	return nil
}

// ConnectWeak adds a weak edge from from to to. Weak edges may close
// cycles and never fail with a cycle error; ConnectWeak fails only with
// ErrUnknownNode when either node has not been added. Weak edges are excluded from constraint-inheritance
// traversal (Successors) but included when computing runtime successors
// (AllSuccessors).
func (g *Graph) ConnectWeak(from, to NodeID) error {
	if _, ok := g.nodes[from]; !ok {
		return ErrUnknownNode
	}
	if _, ok := g.nodes[to]; !ok {
		return ErrUnknownNode
	}
	g.weak[from] = append(g.weak[from], to)
	trace.Debug(context.Background(), g.cfg.logger, "loom.story.connect_weak",
		slog.Int("from", int(from)), slog.Int("to", int(to)))
	return nil
}

// Successors returns the strong successors of node, used by inheritance
// (path-satisfaction) logic.
func (g *Graph) Successors(node NodeID) []NodeID {
	return append([]NodeID(nil), g.strong[node]...)
}

// AllSuccessors returns the strong and weak successors of node, used at
// runtime to compute what may be played next.
func (g *Graph) AllSuccessors(node NodeID) []NodeID {
	seen := make(map[NodeID]struct{})
	out := make([]NodeID, 0, len(g.strong[node])+len(g.weak[node]))
	for _, s := range g.strong[node] {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	for _, s := range g.weak[node] {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// Weight returns the opaque weight assigned to the strong edge (parent,
// child) and whether that edge exists.
func (g *Graph) Weight(parent, child NodeID) (float64, bool) {
	w, ok := g.weights[edgeKey{parent, child}]
	return w, ok
}
