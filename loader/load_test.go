package loader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-tales/loom/loader"
	"github.com/kestrel-tales/loom/property"
)

func TestAdapter_LoadWorld_TolerantOfComments(t *testing.T) {
	data := []byte(`{
		// Bertrand and Juliette, per the opinion scenario.
		"entities": [
			{"id": 0, "properties": {"name": {"kind": "string", "str": "Bertrand"}}},
			{"id": 1, "properties": {"name": {"kind": "string", "str": "Juliette"}}},
		],
		"relations": [
			{"from": 0, "to": 1, "properties": {"opinion": {"kind": "int", "int": 2}}},
		],
		"global": {"location": {"kind": "string", "str": "bakery"}},
	}`)

	a := loader.NewAdapter()
	w, err := a.LoadWorld(t.Context(), data)
	require.NoError(t, err)

	e, ok := w.Entity(0)
	require.True(t, ok)
	name, _ := e.Properties.Get("name")
	assert.Equal(t, property.String("Bertrand"), name)

	rel := w.Relation(0, 1)
	opinion, ok := rel.Get("opinion")
	require.True(t, ok)
	assert.Equal(t, property.Int(2), opinion)
}

func TestAdapter_LoadGraph(t *testing.T) {
	data := []byte(`{
		"aliases": [{"name": "guy"}, {"name": "girl"}],
		"nodes": [
			{
				"description": "meeting",
				"directive": "",
				"relation_constraints": [
					{"me": "guy", "other": "girl", "constraints": [
						{"type": "range", "name": "opinion", "lo": 1, "hi": 4}
					]}
				]
			}
		],
		"start": 0,
	}`)

	a := loader.NewAdapter()
	g, err := a.LoadGraph(t.Context(), data)
	require.NoError(t, err)

	start, ok := g.Start()
	require.True(t, ok)
	n, ok := g.Node(start)
	require.True(t, ok)
	assert.Equal(t, "meeting", n.Description)
	require.Len(t, n.RelationConstraints, 1)
	assert.Equal(t, "guy", n.RelationConstraints[0].Me)
}

func TestAdapter_LoadGraph_UnknownConstraintType(t *testing.T) {
	data := []byte(`{
		"nodes": [{"description": "n", "world_constraints": [{"type": "bogus", "name": "x"}]}],
		"start": 0
	}`)

	a := loader.NewAdapter()
	_, err := a.LoadGraph(t.Context(), data)
	require.ErrorIs(t, err, loader.ErrUnknownConstraintType)
}
