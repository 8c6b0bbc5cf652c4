package story_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-tales/loom/story"
)

func TestGraph_ConnectDetectsCycle(t *testing.T) {
	g := story.NewGraph()
	a := g.Add(story.NewNode("a", ""))
	b := g.Add(story.NewNode("b", ""))
	c := g.Add(story.NewNode("c", ""))

	require.NoError(t, g.Connect(a, b))
	require.NoError(t, g.Connect(b, c))

	err := g.Connect(c, a)
	require.Error(t, err)
	var cycleErr *story.CycleDetectedError
	require.ErrorAs(t, err, &cycleErr)

	// The rejected edge must not be retained.
	assert.NotContains(t, g.Successors(c), a)
}

func TestGraph_ConnectWeakNeverFails(t *testing.T) {
	g := story.NewGraph()
	a := g.Add(story.NewNode("a", ""))
	b := g.Add(story.NewNode("b", ""))

	require.NoError(t, g.Connect(a, b))
	// A weak back-edge closing the a->b->a cycle must always succeed.
	require.NoError(t, g.ConnectWeak(b, a))

	assert.Contains(t, g.Successors(a), b)
	assert.NotContains(t, g.Successors(b), a)
	assert.Contains(t, g.AllSuccessors(b), a)
}

func TestGraph_SetStartRequiresExistingNode(t *testing.T) {
	g := story.NewGraph()
	err := g.SetStart(99)
	require.ErrorIs(t, err, story.ErrUnknownNode)

	a := g.Add(story.NewNode("a", ""))
	require.NoError(t, g.SetStart(a))
	start, ok := g.Start()
	assert.True(t, ok)
	assert.Equal(t, a, start)
}
