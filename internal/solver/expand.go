package solver

import (
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/discretize"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/energy"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/model"
)

// expandStation performs spec.md §4.4's per-stage transition: for
// every surviving state at station i, enumerate legal actions, price
// them, traverse the outgoing segment, and collect the candidates
// that will become F[i+1] once dominance is applied.
func expandStation(i int, st model.Station, seg energy.Segment, s model.Scenario, grid discretize.Grid, timeGrid discretize.TimeGrid, frontier Frontier) Frontier {
	var candidates []*model.StateRecord

	for _, rec := range frontier.records {
		socBefore := grid.KWh(rec.State.SoCLevel)
		actions := enumerateActions(st, s.AllowHybridSwapCharge, grid, socBefore)

		for _, a := range actions {
			socAfterBerth, dwell, wait, breakdown, ok := priceAction(st, a, socBefore, s.BatteryCapacityKWh, rec.ArrivalClock, s.DepartureHour)
			if !ok {
				continue
			}

			departureClock := rec.ArrivalClock.Add(wait + dwell)
			arrivalSoCKWh := socAfterBerth - seg.EnergyKWh
			if arrivalSoCKWh < s.MinSoCKWh-1e-9 {
				continue
			}
			if arrivalSoCKWh > s.BatteryCapacityKWh {
				arrivalSoCKWh = s.BatteryCapacityKWh
			}
			arrivalClock := departureClock.Add(seg.TravelTimeHours)

			action := model.Action{Kind: a.kind, ContainersSwapped: a.k, EnergyChargedKWh: a.delta}

			candidates = append(candidates, &model.StateRecord{
				State: model.State{
					StationIndex: i + 1,
					SoCLevel:     grid.Quantize(arrivalSoCKWh),
					TimeBucket:   timeGrid.Bucket(arrivalClock.Linear),
				},
				ArrivalClock:   arrivalClock,
				CumulativeCost: rec.CumulativeCost + breakdown.Total,
				Action:         action,
				DwellHours:     wait + dwell,
				CostBreakdown:  breakdown,
				Predecessor:    rec,
			})
		}
	}

	// If every state at this station failed to produce any legal,
	// SoC-feasible continuation, F[i+1] is legitimately empty; the
	// diagnostic's bottleneck scan explains why.
	return buildFrontier(candidates)
}
