package solver

import (
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/discretize"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/model"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/pricing"
)

// candidateAction is one (containers, grid-charge) combination worth
// pricing at a station, before operating-hours/dwell feasibility is
// checked.
type candidateAction struct {
	kind  model.ActionKind
	k     int
	delta float64
}

// enumerateActions lists the legal candidate actions at station st,
// per spec.md §4.4 step 2. Order is deterministic (idle, swaps
// ascending k, charges ascending delta, hybrid combos ascending
// (k,delta)) so repeated runs enumerate identically.
func enumerateActions(st model.Station, allowHybrid bool, grid discretize.Grid, socBeforeKWh float64) []candidateAction {
	out := []candidateAction{{kind: model.ActionIdle}}

	maxSwap := st.ContainerCount
	if st.ChargedStock < maxSwap {
		maxSwap = st.ChargedStock
	}

	var swapKs []int
	if st.SwapAllowed {
		for k := 1; k <= maxSwap; k++ {
			if k < st.ContainerCount && !st.PartialSwapAllowed {
				continue
			}
			swapKs = append(swapKs, k)
			out = append(out, candidateAction{kind: model.ActionSwap, k: k})
		}
	}

	var charges []float64
	if st.ChargingAllowed {
		headroom := grid.Capacity - socBeforeKWh
		for d := grid.Step; d <= headroom+1e-9; d += grid.Step {
			charges = append(charges, d)
			out = append(out, candidateAction{kind: model.ActionCharge, delta: d})
		}
	}

	if allowHybrid && len(swapKs) > 0 && len(charges) > 0 {
		for _, k := range swapKs {
			for _, d := range charges {
				out = append(out, candidateAction{kind: model.ActionSwapCharge, k: k, delta: d})
			}
		}
	}

	return out
}

// priceAction computes the full physical+monetary outcome of applying
// a candidate action at station st, arriving with clock arrival and
// SoC socBeforeKWh. ok is false if the action is infeasible (exceeds
// max dwell, doesn't fit operating hours, or the grid charge would
// need to be billed against a zero charging power).
func priceAction(st model.Station, a candidateAction, socBeforeKWh float64, capacityKWh float64, arrival model.Clock, departureHour float64) (newSoCKWh float64, dwellHours float64, waitHours float64, breakdown model.CostBreakdown, ok bool) {
	N := st.ContainerCount
	unitCap := st.ContainerCapacityKWh

	socAfterSwap := socBeforeKWh
	swapEnergy := 0.0
	if a.k > 0 && N > 0 {
		residualPerContainer := socBeforeKWh / float64(N)
		swapEnergy = pricing.SwapEnergyKWh(unitCap, repeatResidual(residualPerContainer, a.k))
		socAfterSwap = socBeforeKWh*(1-float64(a.k)/float64(N)) + float64(a.k)*unitCap
	}

	delta := a.delta
	newSoCKWh = socAfterSwap + delta
	if newSoCKWh > capacityKWh {
		delta -= newSoCKWh - capacityKWh
		newSoCKWh = capacityKWh
	}

	handling := st.SwapTimePerContainerHr * float64(a.k)
	chargingTime := 0.0
	if delta > 0 {
		if st.ChargingPowerKW <= 0 {
			return 0, 0, 0, model.CostBreakdown{}, false
		}
		chargingTime = delta / st.ChargingPowerKW
	}
	dwellHours = st.QueueTimeHr + handling + chargingTime

	arrivalMod24 := arrival.Mod24(departureHour)
	waitHours = waitUntilOpen(st.OperatingHours, arrivalMod24)
	startMod24 := arrivalMod24 + waitHours
	if startMod24 >= 24 {
		startMod24 -= 24
	}

	if st.MaxDwellHr > 0 && dwellHours > st.MaxDwellHr+1e-9 {
		return 0, 0, 0, model.CostBreakdown{}, false
	}
	if !dwellFits(st.OperatingHours, startMod24, dwellHours) {
		return 0, 0, 0, model.CostBreakdown{}, false
	}

	breakdown = pricing.Quote(pricing.Request{
		Params:                st.Pricing,
		ContainersSwapped:     a.k,
		SwapEnergyKWh:         swapEnergy,
		GridChargeKWh:         delta,
		ArrivalClockTimeMod24: startMod24,
		DwellHours:            dwellHours,
		HotellingPowerKW:      st.HotellingPowerKW,
	})
	return newSoCKWh, dwellHours, waitHours, breakdown, true
}

func repeatResidual(residual float64, k int) []float64 {
	out := make([]float64, k)
	for i := range out {
		out[i] = residual
	}
	return out
}
