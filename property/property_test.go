package property_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrel-tales/loom/property"
)

func TestProperty_Equal(t *testing.T) {
	tests := []struct {
		name     string
		a, b     property.Property
		expected bool
	}{
		{"same string", property.String("a"), property.String("a"), true},
		{"different string", property.String("a"), property.String("b"), false},
		{"same int", property.Int(3), property.Int(3), true},
		{"different int", property.Int(3), property.Int(4), false},
		{"same real", property.Real(1.5), property.Real(1.5), true},
		{"int vs real never equal", property.Int(1), property.Real(1), false},
		{"string vs int never equal", property.String("1"), property.Int(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Equal(tt.b))
		})
	}
}

func TestProperty_Display(t *testing.T) {
	assert.Equal(t, "hello", property.String("hello").Display())
	assert.Equal(t, "18", property.Int(18).Display())
	assert.Equal(t, "18", property.Real(18).Display())
	assert.Equal(t, "18.5", property.Real(18.5).Display())
}

func TestMap_WithAndGet(t *testing.T) {
	m := property.NewMap().With("name", property.String("Umberto")).With("level", property.Int(1))

	v, ok := m.Get("name")
	assert.True(t, ok)
	assert.Equal(t, property.String("Umberto"), v)

	_, ok = m.Get("missing")
	assert.False(t, ok)
	assert.True(t, m.Has("level"))
	assert.Equal(t, 2, m.Len())
}

func TestMap_WithDoesNotMutateReceiver(t *testing.T) {
	base := property.NewMap().With("a", property.Int(1))
	extended := base.With("b", property.Int(2))

	assert.False(t, base.Has("b"))
	assert.True(t, extended.Has("a"))
	assert.True(t, extended.Has("b"))
}
