package solver

import (
	"sort"

	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/model"
)

// frontierKey is the (soc_level, arrival_time_bucket) key spec.md
// §4.4 keys F[i] by.
type frontierKey struct {
	SoCLevel   int
	TimeBucket int
}

// Frontier is the non-dominated state set for one station, F[i].
type Frontier struct {
	records []*model.StateRecord
}

// buildFrontier keys new candidate records by (soc_level, time_bucket),
// keeping only the cheapest record per key (ties broken by earliest
// arrival, deterministically), then applies the dominance rule across
// the whole surviving set to prune strictly-worse states.
func buildFrontier(candidates []*model.StateRecord) Frontier {
	best := map[frontierKey]*model.StateRecord{}
	for _, c := range candidates {
		k := frontierKey{SoCLevel: c.State.SoCLevel, TimeBucket: c.State.TimeBucket}
		cur, ok := best[k]
		if !ok || isBetter(c, cur) {
			best[k] = c
		}
	}

	merged := make([]*model.StateRecord, 0, len(best))
	for _, v := range best {
		merged = append(merged, v)
	}
	sortDeterministic(merged)

	return Frontier{records: pruneDominated(merged)}
}

// isBetter breaks a same-key tie deterministically: lower cost wins,
// then earlier arrival time.
func isBetter(a, b *model.StateRecord) bool {
	if a.CumulativeCost != b.CumulativeCost {
		return a.CumulativeCost < b.CumulativeCost
	}
	return a.ArrivalClock.Linear < b.ArrivalClock.Linear
}

// sortDeterministic orders records by (soc_level asc, time_bucket asc)
// so that enumeration and the dominance scan are byte-for-byte
// reproducible across runs (spec.md §4.4 "Tie-break and determinism").
func sortDeterministic(records []*model.StateRecord) {
	sort.Slice(records, func(i, j int) bool {
		ri, rj := records[i], records[j]
		if ri.State.SoCLevel != rj.State.SoCLevel {
			return ri.State.SoCLevel < rj.State.SoCLevel
		}
		if ri.State.TimeBucket != rj.State.TimeBucket {
			return ri.State.TimeBucket < rj.State.TimeBucket
		}
		return ri.CumulativeCost < rj.CumulativeCost
	})
}

// pruneDominated removes every record dominated by another: a_soc >=
// b_soc && a_time <= b_time && a_cost <= b_cost, with at least one
// strict inequality (spec.md §4.4 step 5).
func pruneDominated(records []*model.StateRecord) []*model.StateRecord {
	keep := make([]bool, len(records))
	for i := range keep {
		keep[i] = true
	}
	for i, a := range records {
		if !keep[i] {
			continue
		}
		for j, b := range records {
			if i == j || !keep[j] {
				continue
			}
			if dominates(a, b) {
				keep[j] = false
			}
		}
	}
	out := make([]*model.StateRecord, 0, len(records))
	for i, r := range records {
		if keep[i] {
			out = append(out, r)
		}
	}
	return out
}

func dominates(a, b *model.StateRecord) bool {
	socGE := a.State.SoCLevel >= b.State.SoCLevel
	timeLE := a.ArrivalClock.Linear <= b.ArrivalClock.Linear
	costLE := a.CumulativeCost <= b.CumulativeCost
	if !(socGE && timeLE && costLE) {
		return false
	}
	strict := a.State.SoCLevel > b.State.SoCLevel ||
		a.ArrivalClock.Linear < b.ArrivalClock.Linear ||
		a.CumulativeCost < b.CumulativeCost
	return strict
}

// BestSoCLevel returns the highest surviving SoC level in the
// frontier, or -1 if empty.
func (f Frontier) BestSoCLevel() int {
	best := -1
	for _, r := range f.records {
		if r.State.SoCLevel > best {
			best = r.State.SoCLevel
		}
	}
	return best
}

func (f Frontier) Size() int { return len(f.records) }
