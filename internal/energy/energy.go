// Package energy implements the Energy Model (spec.md §4.1): a pure
// function from segment geometry to energy required and travel time.
package energy

// Model holds the current-direction multiplier coefficients. The
// defaults match historical behavior; implementers may override them
// per spec.md §4.1's note that they MAY be exposed as configuration.
type Model struct {
	DownstreamMultiplier float64 // multiplier(+1), default 0.75
	NeutralMultiplier    float64 // multiplier(0), default 1.0
	UpstreamMultiplier   float64 // multiplier(-1), default 1.25
}

// DefaultModel returns the Energy Model with the spec's default
// coefficients.
func DefaultModel() Model {
	return Model{
		DownstreamMultiplier: 0.75,
		NeutralMultiplier:    1.0,
		UpstreamMultiplier:   1.25,
	}
}

// Multiplier returns the consumption multiplier for a current sign.
// Unrecognized signs (anything but -1, 0, +1) are treated as neutral.
func (m Model) Multiplier(currentSign int) float64 {
	switch currentSign {
	case 1:
		return m.DownstreamMultiplier
	case -1:
		return m.UpstreamMultiplier
	default:
		return m.NeutralMultiplier
	}
}

// Segment is the outcome of traversing one segment: the energy it
// consumes and how long it takes.
type Segment struct {
	EnergyKWh       float64
	TravelTimeHours float64
}

// Traverse computes a segment's energy and travel time from distance,
// water-current sign, cruise speed, and the vessel's per-unit
// consumption coefficient (spec.md §4.1).
func (m Model) Traverse(distance float64, currentSign int, cruiseSpeed, baseConsumptionPerUnit float64) Segment {
	return Segment{
		EnergyKWh:       distance * baseConsumptionPerUnit * m.Multiplier(currentSign),
		TravelTimeHours: distance / cruiseSpeed,
	}
}

// ExceedsCapacity reports whether this segment is structurally
// infeasible: no amount of pre-departure charge fits it under the
// battery's physical ceiling. The Diagnostic treats this as a
// bottleneck rather than a silent no-solution (spec.md §4.1).
func (s Segment) ExceedsCapacity(capacityKWh float64) bool {
	return s.EnergyKWh > capacityKWh
}
