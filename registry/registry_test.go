package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-tales/loom/constraint"
	"github.com/kestrel-tales/loom/entity"
	"github.com/kestrel-tales/loom/property"
	"github.com/kestrel-tales/loom/registry"
	"github.com/kestrel-tales/loom/story"
	"github.com/kestrel-tales/loom/world"
)

func singleNodeGraph(aliasName string, aliasConstraints ...constraint.Constraint) *story.Graph {
	g := story.NewGraph()
	g.AddAlias(aliasName, aliasConstraints...)
	n := g.Add(story.NewNode("node", ""))
	_ = g.SetStart(n)
	return g
}

// Scenario 3: wealth range split — two graphs with different per-alias
// money ranges both match the same (generic) player entity.
func TestRegistry_WealthRangeSplit(t *testing.T) {
	w := world.New().
		WithEntity(entity.New(0, property.NewMap().
			With("money", property.Real(15.0)).
			With("player", property.String("")))).
		WithEntity(entity.New(1, property.NewMap().
			With("job", property.String("baker")).
			With("important", property.String("")))).
		WithEntity(entity.New(2, property.NewMap())).
		WithProperty("location", property.String("bakery"))

	r := registry.New()
	r.Insert(singleNodeGraph("patron", constraint.NewRangeFloat("money", 10, 100000)))
	r.Insert(singleNodeGraph("patron", constraint.NewRangeFloat("money", 0, 20)))

	candidates := r.Query(w)
	assert.Len(t, candidates, 2)
}

// Scenario 6 (end to end through the registry): insert a graph, query it,
// and render the winning node's directive from the surviving binding.
func TestRegistry_DirectiveEndToEnd(t *testing.T) {
	w := world.New().
		WithEntity(entity.New(0, property.NewMap().
			With("name", property.String("Umberto")).
			With("class", property.String("explorer")))).
		WithEntity(entity.New(1, property.NewMap().
			With("name", property.String("Hialda")).
			With("age", property.Real(18.0)))).
		WithProperty("location", property.String("Calvinton"))

	g := story.NewGraph()
	g.AddAlias("player")
	g.AddAlias("vendor")
	n := g.Add(story.NewNode("shop", "Hello {player.name} the {player.class}! "+
		"Although I am only {vendor.age} years old, I am the namesake of this "+
		"{location} shop: {vendor.name}'s Goods!"))
	require.NoError(t, g.SetStart(n))

	r := registry.New()
	id := r.Insert(g)

	candidates := r.Query(w)
	require.Len(t, candidates, 1)
	assert.Equal(t, id, candidates[0].ID)
	require.Len(t, candidates[0].AliasCandidates, 2) // player/vendor over 2 entities, self-pairs rejected

	var rendered string
	for _, b := range candidates[0].AliasCandidates {
		player, _ := b.Get("player")
		vendor, _ := b.Get("vendor")
		if player == 0 && vendor == 1 {
			node, _ := g.Node(n)
			out, err := node.RenderDirective(b, w)
			require.NoError(t, err)
			rendered = out
		}
	}
	assert.Equal(t,
		"Hello Umberto the explorer! Although I am only 18 years old, "+
			"I am the namesake of this Calvinton shop: Hialda's Goods!",
		rendered)
}

func TestRegistry_ExclusionSkipsGraphEntirely(t *testing.T) {
	r := registry.New()
	id := r.Insert(singleNodeGraph("x"))

	w := world.New().WithEntity(entity.New(0, property.NewMap())).WithExcluded(id)
	candidates := r.Query(w)
	assert.Empty(t, candidates)
}

func TestRegistry_GetUnknownID(t *testing.T) {
	r := registry.New()
	_, ok := r.Get(0)
	assert.False(t, ok)
}
