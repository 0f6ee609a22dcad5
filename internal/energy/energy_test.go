package energy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiplier(t *testing.T) {
	m := DefaultModel()
	cases := []struct {
		name string
		sign int
		want float64
	}{
		{"downstream", 1, 0.75},
		{"neutral", 0, 1.0},
		{"upstream", -1, 1.25},
		{"unrecognized treated as neutral", 7, 1.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, m.Multiplier(tc.sign))
		})
	}
}

func TestTraverse(t *testing.T) {
	m := DefaultModel()
	seg := m.Traverse(100, -1, 10, 2)
	assert.InDelta(t, 250.0, seg.EnergyKWh, 1e-9) // 100 * 2 * 1.25
	assert.InDelta(t, 10.0, seg.TravelTimeHours, 1e-9)
}

func TestExceedsCapacity(t *testing.T) {
	seg := Segment{EnergyKWh: 500}
	assert.True(t, seg.ExceedsCapacity(400))
	assert.False(t, seg.ExceedsCapacity(600))
}
