package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrel-tales/loom/entity"
	"github.com/kestrel-tales/loom/property"
	"github.com/kestrel-tales/loom/world"
)

func TestWorld_RelationAbsentPairYieldsEmptyMap(t *testing.T) {
	w := world.New()
	m := w.Relation(0, 1)
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Has("opinion"))
}

func TestWorld_BuilderIsImmutable(t *testing.T) {
	base := world.New().WithEntity(entity.New(0, property.NewMap().With("name", property.String("Bertrand"))))
	extended := base.WithEntity(entity.New(1, property.NewMap().With("name", property.String("Juliette"))))

	_, ok := base.Entity(1)
	assert.False(t, ok)
	_, ok = extended.Entity(1)
	assert.True(t, ok)
}

func TestWorld_Exclusion(t *testing.T) {
	w := world.New().WithExcluded(2)
	assert.True(t, w.IsIncluded(0))
	assert.False(t, w.IsIncluded(2))
}

func TestWorld_Global(t *testing.T) {
	w := world.New().WithProperty("location", property.String("bakery"))
	v, ok := w.Global().Get("location")
	assert.True(t, ok)
	assert.Equal(t, property.String("bakery"), v)
}
