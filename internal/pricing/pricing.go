// Package pricing implements the seven-component hybrid Pricing Engine
// (spec.md §4.2): a pure function from a proposed station action to its
// monetary cost.
package pricing

import "github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/model"

// Request describes one proposed berth action priced against a
// station's PricingParams.
type Request struct {
	Params model.PricingParams

	ContainersSwapped int
	// SwapEnergyKWh is the billable swap energy per spec.md's
	// SoC-based billing invariant: Σ(C/N - r_i) over swapped
	// containers, never nominal capacity alone.
	SwapEnergyKWh float64
	// GridChargeKWh is energy drawn directly via the charging
	// connection (independent of any swap).
	GridChargeKWh float64

	ArrivalClockTimeMod24 float64
	DwellHours            float64
	HotellingPowerKW      float64
}

// Quote prices one Request per spec.md §4.2's formula, returning the
// full component breakdown so callers can report exactly what was
// charged for.
func Quote(r Request) model.CostBreakdown {
	p := r.Params
	k := float64(r.ContainersSwapped)
	e := r.SwapEnergyKWh + r.GridChargeKWh

	base := p.BaseServiceFee
	swapCost := p.SwapCostPerContainer * k
	premium := p.LocationPremiumPerContainer * k
	energyCost := p.EnergyCostPerKWh * e
	degradation := p.DegradationFeePerKWh * e

	components := base + swapCost + premium + energyCost + degradation

	peakMult := 1.0
	if inPeakWindow(r.ArrivalClockTimeMod24, p.PeakStartHour, p.PeakEndHour) {
		peakMult = p.PeakHourMultiplier
	}

	subtotal := components * peakMult
	discounted := subtotal * (1 - p.SubscriptionDiscount)
	hotelling := r.HotellingPowerKW * r.DwellHours * p.EnergyCostPerKWh

	return model.CostBreakdown{
		BaseServiceFee:        base,
		SwapCost:              swapCost,
		LocationPremium:       premium,
		EnergyCost:            energyCost,
		DegradationFee:        degradation,
		HotellingCost:         hotelling,
		PeakMultiplierApplied: peakMult,
		SubscriptionDiscount:  p.SubscriptionDiscount,
		Total:                 discounted + hotelling,
	}
}

// inPeakWindow reports whether clock time t (in [0,24)) falls within
// [start,end). A wraparound window (start > end) covers [start,24) ∪
// [0,end), per spec.md §4.2's contract. start == end means no peak
// window (never true).
func inPeakWindow(t, start, end float64) bool {
	if start == end {
		return false
	}
	if start < end {
		return t >= start && t < end
	}
	return t >= start || t < end
}

// SwapEnergyKWh computes the billable swap energy for k containers
// with per-container capacity unitCapacityKWh, given the residual
// charge (kWh) of each returned container, per spec.md §4.2's
// SoC-based billing invariant: Σ(C/N - r_i).
func SwapEnergyKWh(unitCapacityKWh float64, residualsKWh []float64) float64 {
	total := 0.0
	for _, r := range residualsKWh {
		delta := unitCapacityKWh - r
		if delta > 0 {
			total += delta
		}
	}
	return total
}
