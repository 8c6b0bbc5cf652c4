package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrel-tales/loom/constraint"
	"github.com/kestrel-tales/loom/property"
)

func TestConstraint_IsSatisfiedBy(t *testing.T) {
	withOpinion := property.NewMap().With("opinion", property.Int(2))
	withMoney := property.NewMap().With("money", property.Real(15.0))
	empty := property.NewMap()

	tests := []struct {
		name       string
		constraint constraint.Constraint
		m          property.Map
		expected   bool
	}{
		{"Has present", constraint.NewHas("opinion"), withOpinion, true},
		{"Has absent", constraint.NewHas("opinion"), empty, false},
		{"HasNot absent", constraint.NewHasNot("opinion"), empty, true},
		{"HasNot present", constraint.NewHasNot("opinion"), withOpinion, false},
		{"Equals matching tag and value", constraint.NewEquals("opinion", property.Int(2)), withOpinion, true},
		{"Equals wrong value", constraint.NewEquals("opinion", property.Int(3)), withOpinion, false},
		{"Equals cross-tag never matches", constraint.NewEquals("opinion", property.Real(2)), withOpinion, false},
		{"Equals missing property", constraint.NewEquals("opinion", property.Int(2)), empty, false},
		{"Range lo inclusive", constraint.NewRange("opinion", 2, 4), withOpinion, true},
		{"Range hi exclusive", constraint.NewRange("opinion", 0, 2), withOpinion, false},
		{"Range wrong tag is false not error", constraint.NewRange("money", 0, 100), withMoney, false},
		{"Range missing property", constraint.NewRange("opinion", 0, 4), empty, false},
		{"RangeFloat lo inclusive", constraint.NewRangeFloat("money", 15.0, 100000), withMoney, true},
		{"RangeFloat hi exclusive", constraint.NewRangeFloat("money", 0, 15.0), withMoney, false},
		{"RangeFloat wrong tag is false not error", constraint.NewRangeFloat("opinion", 0, 10), withOpinion, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.constraint.IsSatisfiedBy(tt.m))
		})
	}
}

func TestAll_EmptyIsVacuouslySatisfied(t *testing.T) {
	assert.True(t, constraint.All(nil, property.NewMap()))
}
