package discretize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridQuantizeFloors(t *testing.T) {
	g := NewGrid(10, 100)
	assert.Equal(t, 4, g.Quantize(45))
	assert.Equal(t, 4, g.Quantize(49.99))
	assert.Equal(t, 5, g.Quantize(50))
}

func TestGridQuantizeClampsToMaxLevel(t *testing.T) {
	g := NewGrid(10, 95)
	assert.Equal(t, 9, g.MaxLevel())
	assert.Equal(t, 9, g.Quantize(200))
}

func TestGridKWhRoundTrip(t *testing.T) {
	g := NewGrid(10, 100)
	assert.InDelta(t, 40.0, g.KWh(g.Quantize(45)), 1e-9)
}

func TestNewGridClampsBadStep(t *testing.T) {
	g := NewGrid(0, 50)
	assert.Equal(t, 50.0, g.Step)
	g2 := NewGrid(1000, 50)
	assert.Equal(t, 50.0, g2.Step)
}

func TestTimeGridBucket(t *testing.T) {
	g := NewTimeGrid(0.1)
	assert.Equal(t, 0, g.Bucket(0))
	assert.Equal(t, 4, g.Bucket(0.45))
	assert.Equal(t, 5, g.Bucket(0.5))
}

func TestNewTimeGridDefaultsNonPositiveStep(t *testing.T) {
	g := NewTimeGrid(0)
	assert.InDelta(t, 0.05, g.StepHours, 1e-9)
}
