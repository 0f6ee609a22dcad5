// Package solver implements the DP Solver (spec.md §4.4): a forward
// sweep over stations maintaining, at each station, a pruned set of
// non-dominated (soc, arrival-time) states and their backpointers.
package solver

import (
	"context"

	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/diagnostic"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/discretize"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/energy"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/model"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/solveerr"
)

// ProgressFunc, if supplied, is called once per completed station
// expansion with the index of the station whose frontier was just
// built (i+1 after expanding station i) and that frontier's size. It is how internal/progress taps into the solve
// without the solver depending on any transport.
type ProgressFunc func(stationIndex, frontierSize int)

// Options controls a single Solve call.
type Options struct {
	EnergyModel energy.Model // zero value -> energy.DefaultModel()
	OnProgress  ProgressFunc
}

// Solve runs the forward-sweep DP described in spec.md §4.4 over the
// scenario's fixed station sequence. Exactly one of (plan, report) is
// non-nil on a nil error return; error is non-nil only when the
// outcome is itself a configuration problem the caller passed in
// (Solve trusts that model.NewScenario already validated it, but
// guards regardless since Solve may be called directly in tests).
func Solve(ctx context.Context, s model.Scenario, opts Options) (*model.Plan, *diagnostic.Report, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}

	em := opts.EnergyModel
	if em == (energy.Model{}) {
		em = energy.DefaultModel()
	}
	grid := discretize.NewGrid(s.SoCStepKWh, s.BatteryCapacityKWh)
	timeGrid := discretize.NewTimeGrid(s.TimeStepHours)

	origin := model.StateRecord{
		State: model.State{
			StationIndex: 0,
			SoCLevel:     grid.Quantize(s.InitialSoCKWh),
			TimeBucket:   timeGrid.Bucket(0),
		},
		ArrivalClock: model.Clock{Linear: 0},
	}
	frontiers := make([]Frontier, len(s.Stations))
	frontiers[0] = Frontier{records: []*model.StateRecord{&origin}}

	segmentSnapshots := make([]diagnostic.SegmentEnergySnapshot, 0, len(s.Stations)-1)

	for i := 0; i < s.LastIndex(); i++ {
		select {
		case <-ctx.Done():
			return nil, cancelledReport(), nil
		default:
		}

		st := s.Stations[i]
		seg := em.Traverse(st.DistToNext, st.CurrentSign, s.CruiseSpeed, s.BaseConsumptionPerUnit)
		segmentSnapshots = append(segmentSnapshots, diagnostic.SegmentEnergySnapshot{
			FromStationID:     st.ID,
			ToStationID:       s.Stations[i+1].ID,
			EnergyRequiredKWh: seg.EnergyKWh,
		})

		next := expandStation(i, st, seg, s, grid, timeGrid, frontiers[i])

		if s.MaxFrontierSize > 0 && next.Size() > s.MaxFrontierSize {
			return nil, resourceExhaustedReport(next.Size()), nil
		}

		frontiers[i+1] = next
		if opts.OnProgress != nil {
			opts.OnProgress(i+1, next.Size())
		}

		select {
		case <-ctx.Done():
			return nil, cancelledReport(), nil
		default:
		}
	}

	winner := selectWinner(frontiers[s.LastIndex()], grid, s.FinalSoCRequiredKWh)
	if winner == nil {
		snaps := make([]diagnostic.FrontierSnapshot, len(frontiers))
		for i, f := range frontiers {
			snaps[i] = diagnostic.FrontierSnapshot{Size: f.Size(), BestSoCKWh: grid.KWh(f.BestSoCLevel())}
		}
		report := diagnostic.Diagnose(s, snaps, segmentSnapshots)
		return nil, &report, nil
	}

	plan := reconstruct(winner, s, grid)
	return plan, nil, nil
}

func cancelledReport() *diagnostic.Report {
	return &diagnostic.Report{Outcome: solveerr.OutcomeCancelled}
}

func resourceExhaustedReport(size int) *diagnostic.Report {
	return &diagnostic.Report{
		Outcome:           solveerr.OutcomeResourceExhausted,
		FrontierSizeAtCap: size,
		Suggestions:       []string{"the SoC/time discretization is too fine for this scenario size; coarsen soc_step_kwh or raise max_frontier_size"},
	}
}

// selectWinner picks, among frontier f's states meeting the final-SoC
// requirement, the minimum-cost one, tie-broken by earliest arrival
// (spec.md §4.4 "Termination").
func selectWinner(f Frontier, grid discretize.Grid, finalSoCRequiredKWh float64) *model.StateRecord {
	var winner *model.StateRecord
	for _, r := range f.records {
		if grid.KWh(r.State.SoCLevel) < finalSoCRequiredKWh-1e-9 {
			continue
		}
		if winner == nil || isBetter(r, winner) {
			winner = r
		}
	}
	return winner
}
