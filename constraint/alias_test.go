package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrel-tales/loom/constraint"
	"github.com/kestrel-tales/loom/entity"
	"github.com/kestrel-tales/loom/property"
)

// Mirrors the "exclusory specialization" end-to-end scenario: a specialized
// entity binds only to aliases whose constraints name every one of its
// exclusory properties, while a generic entity is unaffected by exclusion.
func TestAlias_SatisfiedBy_ExclusorySpecialization(t *testing.T) {
	specialized := entity.New(1, property.NewMap()).
		WithExclusory(property.NewMap().With("exclusionary", property.String("")))
	generic := entity.New(2, property.NewMap().
		With("exclusionary", property.String("")).
		With("some property", property.String("")))

	precise := constraint.NewAlias("precise", constraint.NewHas("exclusionary"))
	assert.True(t, precise.SatisfiedBy(specialized))
	assert.True(t, precise.SatisfiedBy(generic))

	some := constraint.NewAlias("some", constraint.NewHas("some property"))
	assert.True(t, some.SatisfiedBy(generic))
	assert.False(t, some.SatisfiedBy(specialized))
}
