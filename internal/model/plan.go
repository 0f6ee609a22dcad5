package model

// Plan is the materialized result of a successful solve: the backtrack
// through the winning StateRecord chain, in travel order.
type Plan struct {
	TotalCost         float64
	TotalJourneyHours float64 // linear
	ArrivalClockTime  float64 // mod 24
	SwapCount         int
	Steps             []PlanStep
}

// PlanStep is one station visit in the materialized plan.
type PlanStep struct {
	StationID         string
	ArrivalClockTime  float64 // mod 24, for display
	ArrivalJourneyHrs float64 // linear
	SoCArrivingKWh    float64
	Action            Action
	DwellHours        float64
	CostBreakdown     CostBreakdown
}
