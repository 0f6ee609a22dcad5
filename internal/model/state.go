package model

// State identifies a point in the DP's (station, soc, arrival-time)
// space. SoCLevel and TimeBucket are grid indices, not physical units.
type State struct {
	StationIndex int
	SoCLevel     int
	TimeBucket   int
}

// StateRecord is the surviving information attached to a State during
// the forward sweep: cumulative cost so far, the action taken to
// arrive, and a backpointer to the predecessor state/record.
type StateRecord struct {
	State         State
	ArrivalClock  Clock
	CumulativeCost float64
	Action        Action
	DwellHours    float64
	CostBreakdown CostBreakdown
	Predecessor   *StateRecord
}

// CostBreakdown mirrors the seven-component pricing model so a Plan
// step can report exactly what it was charged for (spec.md §6).
type CostBreakdown struct {
	BaseServiceFee        float64
	SwapCost              float64
	LocationPremium       float64
	EnergyCost            float64
	DegradationFee        float64
	HotellingCost         float64
	PeakMultiplierApplied float64
	SubscriptionDiscount  float64
	Total                 float64
}
