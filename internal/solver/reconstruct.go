package solver

import (
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/discretize"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/model"
)

// reconstruct walks the winning StateRecord's backpointer chain into a
// Plan in travel order (spec.md §3's "Plan extractor").
func reconstruct(winner *model.StateRecord, s model.Scenario, grid discretize.Grid) *model.Plan {
	var chain []*model.StateRecord
	for r := winner; r != nil; r = r.Predecessor {
		chain = append(chain, r)
	}
	// chain is terminus-first; reverse to travel order.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	steps := make([]model.PlanStep, 0, len(chain))
	swapCount := 0
	for _, r := range chain {
		station := s.Stations[r.State.StationIndex]
		steps = append(steps, model.PlanStep{
			StationID:         station.ID,
			ArrivalClockTime:  r.ArrivalClock.Mod24(s.DepartureHour),
			ArrivalJourneyHrs: r.ArrivalClock.Linear,
			SoCArrivingKWh:    grid.KWh(r.State.SoCLevel),
			Action:            r.Action,
			DwellHours:        r.DwellHours,
			CostBreakdown:     r.CostBreakdown,
		})
		if r.Action.Kind == model.ActionSwap || r.Action.Kind == model.ActionSwapCharge {
			swapCount++
		}
	}

	return &model.Plan{
		TotalCost:         winner.CumulativeCost,
		TotalJourneyHours: winner.ArrivalClock.Linear,
		ArrivalClockTime:  winner.ArrivalClock.Mod24(s.DepartureHour),
		SwapCount:         swapCount,
		Steps:             steps,
	}
}
