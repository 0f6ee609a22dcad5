package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/model"
)

func TestSwapEnergyKWhSumsShortfall(t *testing.T) {
	got := SwapEnergyKWh(150, []float64{150, 140, 0})
	assert.InDelta(t, 10+150, got, 1e-9)
}

func TestSwapEnergyKWhIgnoresOverfullResidual(t *testing.T) {
	got := SwapEnergyKWh(150, []float64{200})
	assert.InDelta(t, 0, got, 1e-9)
}

func TestInPeakWindowWraparound(t *testing.T) {
	cases := []struct {
		name        string
		t, start, e float64
		want        bool
	}{
		{"plain window inside", 18, 17, 21, true},
		{"plain window outside", 22, 17, 21, false},
		{"wraparound before midnight", 23, 22, 2, true},
		{"wraparound after midnight", 1, 22, 2, true},
		{"wraparound outside", 10, 22, 2, false},
		{"degenerate never peak", 10, 5, 5, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inPeakWindow(tc.t, tc.start, tc.e))
		})
	}
}

func TestQuoteAppliesPeakThenDiscount(t *testing.T) {
	params := model.PricingParams{
		BaseServiceFee:       10,
		SwapCostPerContainer: 5,
		EnergyCostPerKWh:     1,
		PeakHourMultiplier:   2,
		PeakStartHour:        20,
		PeakEndHour:          22,
		SubscriptionDiscount: 0.1,
	}
	bd := Quote(Request{
		Params:                params,
		ContainersSwapped:     2,
		SwapEnergyKWh:         10,
		ArrivalClockTimeMod24: 21,
	})
	// components = 10 + 5*2 + 1*10 = 30; peak*2 = 60; discount*0.9 = 54
	assert.InDelta(t, 54.0, bd.Total, 1e-9)
	assert.Equal(t, 2.0, bd.PeakMultiplierApplied)
}

func TestQuoteHotellingIsNotDiscounted(t *testing.T) {
	bd := Quote(Request{
		Params:           model.PricingParams{EnergyCostPerKWh: 2},
		HotellingPowerKW: 10,
		DwellHours:       1,
	})
	assert.InDelta(t, 20.0, bd.HotellingCost, 1e-9)
	assert.InDelta(t, 20.0, bd.Total, 1e-9)
}
