package directive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-tales/loom/constraint"
	"github.com/kestrel-tales/loom/directive"
	"github.com/kestrel-tales/loom/entity"
	"github.com/kestrel-tales/loom/property"
	"github.com/kestrel-tales/loom/world"
)

func TestRender_DirectiveTemplating(t *testing.T) {
	w := world.New().
		WithEntity(entity.New(0, property.NewMap().
			With("name", property.String("Umberto")).
			With("class", property.String("explorer")).
			With("level", property.Int(1)))).
		WithEntity(entity.New(1, property.NewMap().
			With("name", property.String("Hialda")).
			With("age", property.Real(18.0)))).
		WithProperty("location", property.String("Calvinton"))

	binding := constraint.NewAliasMap().With("player", 0).With("vendor", 1)

	template := "Hello {player.name} the {player.class}! Although I am only " +
		"{vendor.age} years old, I am the namesake of this {location} shop: {vendor.name}'s Goods!"

	got, err := directive.Render(template, binding, w)
	require.NoError(t, err)
	assert.Equal(t,
		"Hello Umberto the explorer! Although I am only 18 years old, "+
			"I am the namesake of this Calvinton shop: Hialda's Goods!",
		got)
}

func TestRender_IdempotentRendering(t *testing.T) {
	w := world.New().WithProperty("mood", property.String("tense"))
	binding := constraint.NewAliasMap()

	first, err := directive.Render("the air is {mood}", binding, w)
	require.NoError(t, err)
	second, err := directive.Render("the air is {mood}", binding, w)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRender_Errors(t *testing.T) {
	w := world.New()
	binding := constraint.NewAliasMap()

	tests := []struct {
		name     string
		template string
	}{
		{"missing alias binding", "{player.name}"},
		{"missing world property", "{location}"},
		{"unterminated token", "hello {player"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := directive.Render(tt.template, binding, w)
			require.Error(t, err)
			var aliasErr *directive.AliasError
			assert.ErrorAs(t, err, &aliasErr)
		})
	}
}
