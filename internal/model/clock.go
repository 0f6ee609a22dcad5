package model

import "math"

// Clock tracks elapsed journey time two ways at once, per spec.md §9's
// resolved open question: linear for total-journey-time accounting,
// modulo 24 for tariff/peak-window lookups.
type Clock struct {
	// Linear is hours elapsed since departure from the origin.
	Linear float64
}

// Mod24 returns the wall-clock hour of day in [0,24) for tariff lookups.
func (c Clock) Mod24(departureHour float64) float64 {
	t := math.Mod(departureHour+c.Linear, 24)
	if t < 0 {
		t += 24
	}
	return t
}

// Add returns a new Clock advanced by dtHours. Arrival time is
// monotonically non-decreasing along any path (spec.md §3 invariant),
// so dtHours must never be negative.
func (c Clock) Add(dtHours float64) Clock {
	return Clock{Linear: c.Linear + dtHours}
}
