// Package analysis ranks scenario variations by solve outcome, the
// same "compute a summary statistic per variation, sort" shape the
// teacher uses to rank arbitrage potential per grid node.
package analysis

import (
	"context"
	"sort"

	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/model"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/solver"
)

// ReplenishmentOutcome is one station-toggle variation's solve result.
type ReplenishmentOutcome struct {
	StationID       string
	SwapAllowed     bool
	ChargingAllowed bool
	Feasible        bool
	TotalCost       float64
}

// RankReplenishmentToggles re-solves s once per station with that
// station's swap/charging flags forced off, and once with the
// scenario unchanged as the baseline, then sorts the variations with
// feasible ones first and, within each group, by total cost ascending. This exercises Law L2 (disabling
// replenishment at a station never decreases optimum cost) as a
// reusable comparison instead of only a test assertion.
func RankReplenishmentToggles(ctx context.Context, s model.Scenario) ([]ReplenishmentOutcome, error) {
	out := make([]ReplenishmentOutcome, 0, len(s.Stations)+1)

	baseline, _, err := solver.Solve(ctx, s, solver.Options{})
	if err != nil {
		return nil, err
	}
	out = append(out, toOutcome("baseline", true, true, baseline))

	for i := range s.Stations {
		variant := s
		variant.Stations = append([]model.Station(nil), s.Stations...)
		st := variant.Stations[i]
		st.SwapAllowed = false
		st.ChargingAllowed = false
		variant.Stations[i] = st

		plan, _, err := solver.Solve(ctx, variant, solver.Options{})
		if err != nil {
			return nil, err
		}
		out = append(out, toOutcome(s.Stations[i].ID, false, false, plan))
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Feasible != out[j].Feasible {
			return out[i].Feasible
		}
		return out[i].TotalCost < out[j].TotalCost
	})
	return out, nil
}

func toOutcome(stationID string, swap, charge bool, plan *model.Plan) ReplenishmentOutcome {
	if plan == nil {
		return ReplenishmentOutcome{StationID: stationID, SwapAllowed: swap, ChargingAllowed: charge, Feasible: false}
	}
	return ReplenishmentOutcome{StationID: stationID, SwapAllowed: swap, ChargingAllowed: charge, Feasible: true, TotalCost: plan.TotalCost}
}
