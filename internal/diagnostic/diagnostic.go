// Package diagnostic implements the Infeasibility Diagnostic (spec.md
// §4.5): a structured post-mortem over the solver's partial state
// spaces, run when no terminal state satisfies the final-SoC
// constraint.
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/model"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/solveerr"
)

// Bottleneck describes a segment where the frontier collapsed to
// empty (spec.md §4.5.3).
type Bottleneck struct {
	FromStationID        string
	ToStationID          string
	EnergyRequiredKWh    float64
	CapacityKWh          float64
	ExceedsCapacity      bool
	ReplenishmentUpstream bool
}

// ConstraintContradiction is a self-contradictory configuration detail
// surfaced even though Scenario.Validate already rejects the worst
// cases; this is a softer "contradictory but not fatal" scan
// (spec.md §4.5.5).
type ConstraintContradiction struct {
	Description string
}

// Report is the structured, renderable result of a failed solve. It
// is data, not free-form text, so collaborators can render it however
// they like; Format provides a canonical textual convenience.
type Report struct {
	Outcome solveerr.Outcome

	Reachable         bool
	BestAchievableSoCKWh float64
	ShortfallKWh         float64

	Bottlenecks []Bottleneck

	TotalSegmentEnergyKWh float64
	AvailableEnergyBudgetKWh float64
	CatastrophicDeficit      bool

	Contradictions []ConstraintContradiction

	Suggestions []string

	// FrontierSizeAtCap is set when Outcome == OutcomeResourceExhausted.
	FrontierSizeAtCap int
}

// suggestion menu, fixed per spec.md §4.5.6.
const (
	sugEnableReplenishment = "enable swap or charging capability at an intermediate station"
	sugRaiseCapacity       = "raise battery capacity"
	sugLowerFinalSoC       = "lower the final state-of-charge requirement"
	sugWidenHours          = "widen operating hours at a constraining station"
	sugIncreaseStock       = "increase charged-container stock at a constraining station"
	sugRaiseChargingPower  = "raise charging power at a constraining station"
	sugExtendDwell         = "extend the maximum berth duration at a constraining station"
)

// Format renders the canonical textual form of a Report, for CLI/log
// consumption. The Report struct itself remains the authoritative,
// structured form.
func (r Report) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "solve failed: %s\n", r.Outcome)
	if !r.Reachable {
		b.WriteString("  terminus was never reached by any feasible path\n")
	} else {
		fmt.Fprintf(&b, "  best achievable SoC at terminus: %.3f kWh (shortfall %.3f kWh)\n", r.BestAchievableSoCKWh, r.ShortfallKWh)
	}
	for _, bn := range r.Bottlenecks {
		fmt.Fprintf(&b, "  bottleneck: %s -> %s requires %.3f kWh (capacity %.3f, exceeds=%v, upstream replenishment=%v)\n",
			bn.FromStationID, bn.ToStationID, bn.EnergyRequiredKWh, bn.CapacityKWh, bn.ExceedsCapacity, bn.ReplenishmentUpstream)
	}
	if r.CatastrophicDeficit {
		fmt.Fprintf(&b, "  energy budget deficit: total segment energy %.3f kWh vs available %.3f kWh, and no station can replenish\n",
			r.TotalSegmentEnergyKWh, r.AvailableEnergyBudgetKWh)
	}
	for _, c := range r.Contradictions {
		fmt.Fprintf(&b, "  contradiction: %s\n", c.Description)
	}
	for _, s := range r.Suggestions {
		fmt.Fprintf(&b, "  suggestion: %s\n", s)
	}
	return b.String()
}

// FrontierSnapshot is the minimal view the solver hands the
// diagnostic for each station: how many states survived, and the
// best SoC/cost among them.
type FrontierSnapshot struct {
	Size        int
	BestSoCKWh  float64
}

// SegmentEnergySnapshot is the energy required for one segment, as
// pre-computed by the Energy Model.
type SegmentEnergySnapshot struct {
	FromStationID     string
	ToStationID       string
	EnergyRequiredKWh float64
}

// Diagnose runs the structured post-mortem described in spec.md §4.5.
// frontiers has one entry per station (index i = F[i]); segments has
// one entry per outgoing segment (index i = station i -> i+1).
func Diagnose(s model.Scenario, frontiers []FrontierSnapshot, segments []SegmentEnergySnapshot) Report {
	r := Report{Outcome: solveerr.OutcomeInfeasible}

	last := frontiers[len(frontiers)-1]
	r.Reachable = last.Size > 0
	if r.Reachable {
		r.BestAchievableSoCKWh = last.BestSoCKWh
		r.ShortfallKWh = s.FinalSoCRequiredKWh - last.BestSoCKWh
		if r.ShortfallKWh < 0 {
			r.ShortfallKWh = 0
		}
	}

	// Segment bottleneck scan (§4.5.3).
	for i, seg := range segments {
		if i+1 >= len(frontiers) {
			break
		}
		before, after := frontiers[i], frontiers[i+1]
		if before.Size > 0 && after.Size == 0 {
			upstream := false
			for j := 0; j <= i; j++ {
				if s.Stations[j].HasReplenishment() {
					upstream = true
					break
				}
			}
			r.Bottlenecks = append(r.Bottlenecks, Bottleneck{
				FromStationID:         seg.FromStationID,
				ToStationID:           seg.ToStationID,
				EnergyRequiredKWh:     seg.EnergyRequiredKWh,
				CapacityKWh:           s.BatteryCapacityKWh,
				ExceedsCapacity:       seg.EnergyRequiredKWh > s.BatteryCapacityKWh,
				ReplenishmentUpstream: upstream,
			})
		}
	}

	// Energy-budget check (§4.5.4).
	total := 0.0
	for _, seg := range segments {
		total += seg.EnergyRequiredKWh
	}
	r.TotalSegmentEnergyKWh = total
	r.AvailableEnergyBudgetKWh = s.InitialSoCKWh - s.FinalSoCRequiredKWh
	anyReplenishment := false
	for _, st := range s.Stations {
		if st.HasReplenishment() {
			anyReplenishment = true
			break
		}
	}
	if total > r.AvailableEnergyBudgetKWh && !anyReplenishment {
		r.CatastrophicDeficit = true
	}

	// Constraint-compatibility scan (§4.5.5); Scenario.Validate already
	// rejects the genuinely fatal versions of these, so this surfaces
	// softer contradictions worth flagging in the diagnostic itself.
	if s.MinSoCKWh > s.BatteryCapacityKWh {
		r.Contradictions = append(r.Contradictions, ConstraintContradiction{Description: "min_soc_kwh exceeds battery capacity"})
	}
	for _, st := range s.Stations {
		if st.MaxDwellHr > 0 && st.QueueTimeHr > st.MaxDwellHr {
			r.Contradictions = append(r.Contradictions, ConstraintContradiction{
				Description: fmt.Sprintf("station %s: queue time alone (%.3fh) exceeds max dwell (%.3fh)", st.ID, st.QueueTimeHr, st.MaxDwellHr),
			})
		}
		if st.OperatingHours != nil && st.OperatingHours.Open == st.OperatingHours.Close {
			r.Contradictions = append(r.Contradictions, ConstraintContradiction{
				Description: fmt.Sprintf("station %s: operating hours open==close collapses the berth window to zero", st.ID),
			})
		}
	}

	r.Suggestions = suggestionsFor(r)
	return r
}

// suggestionsFor filters the fixed suggestion menu to those plausibly
// relevant to the identified cause (spec.md §4.5.6).
func suggestionsFor(r Report) []string {
	set := map[string]bool{}
	if len(r.Bottlenecks) > 0 {
		for _, bn := range r.Bottlenecks {
			if !bn.ReplenishmentUpstream {
				set[sugEnableReplenishment] = true
			}
			if bn.ExceedsCapacity {
				set[sugRaiseCapacity] = true
			}
		}
	}
	if r.Reachable && r.ShortfallKWh > 0 {
		set[sugLowerFinalSoC] = true
		set[sugRaiseChargingPower] = true
		set[sugIncreaseStock] = true
		set[sugExtendDwell] = true
	}
	if r.CatastrophicDeficit {
		set[sugEnableReplenishment] = true
		set[sugRaiseCapacity] = true
		set[sugLowerFinalSoC] = true
	}
	for _, c := range r.Contradictions {
		if strings.Contains(c.Description, "operating hours") {
			set[sugWidenHours] = true
		}
		if strings.Contains(c.Description, "dwell") {
			set[sugExtendDwell] = true
		}
	}
	out := make([]string, 0, len(set))
	// Fixed, deterministic ordering over the known menu.
	for _, s := range []string{
		sugEnableReplenishment, sugRaiseCapacity, sugLowerFinalSoC,
		sugWidenHours, sugIncreaseStock, sugRaiseChargingPower, sugExtendDwell,
	} {
		if set[s] {
			out = append(out, s)
		}
	}
	return out
}
