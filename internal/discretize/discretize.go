// Package discretize defines the State Discretizer (spec.md §4.3): the
// uniform SoC grid a continuous kWh value is floored onto, so that a
// schedule deemed feasible on the grid is feasible in reality.
package discretize

import "math"

// Grid is a uniform SoC grid over [0, capacity] in Step increments.
type Grid struct {
	Step     float64
	Capacity float64
}

// NewGrid builds a Grid, clamping a non-positive or over-large step to
// the capacity itself (a grid of just 0 and capacity) rather than panicking —
// Scenario.Validate is what rejects a genuinely bad step.
func NewGrid(step, capacity float64) Grid {
	if step <= 0 || step > capacity {
		step = capacity
	}
	return Grid{Step: step, Capacity: capacity}
}

// MaxLevel is the highest representable SoC level index.
func (g Grid) MaxLevel() int {
	return int(math.Floor(g.Capacity / g.Step))
}

// Quantize floors a continuous kWh value onto the grid, returning its
// level index. Flooring keeps the DP conservative per spec.md §4.3.
func (g Grid) Quantize(kwh float64) int {
	if kwh <= 0 {
		return 0
	}
	level := int(math.Floor(kwh/g.Step + 1e-9))
	if max := g.MaxLevel(); level > max {
		level = max
	}
	return level
}

// KWh converts a grid level index back to its physical kWh value.
func (g Grid) KWh(level int) float64 {
	kwh := float64(level) * g.Step
	if kwh > g.Capacity {
		return g.Capacity
	}
	return kwh
}

// TimeGrid buckets arrival clock-time (linear hours since departure)
// into discrete buckets for the DP frontier key, so that two
// arbitrarily-close arrival times don't explode the state space.
type TimeGrid struct {
	StepHours float64
}

// NewTimeGrid returns a TimeGrid; a non-positive step defaults to
// 0.05h (3 minutes), fine enough that dwell/queue times of a few
// minutes still resolve distinctly.
func NewTimeGrid(stepHours float64) TimeGrid {
	if stepHours <= 0 {
		stepHours = 0.05
	}
	return TimeGrid{StepHours: stepHours}
}

// Bucket floors linear hours onto the time grid.
func (g TimeGrid) Bucket(linearHours float64) int {
	if linearHours <= 0 {
		return 0
	}
	return int(math.Floor(linearHours/g.StepHours + 1e-9))
}
