package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/model"
)

func baseScenario() model.Scenario {
	return model.Scenario{
		Stations: []model.Station{
			{ID: "a", DistToNext: 100},
			{ID: "b", DistToNext: 100},
			{ID: "c"},
		},
		BatteryCapacityKWh:  200,
		InitialSoCKWh:       200,
		FinalSoCRequiredKWh: 50,
	}
}

func TestDiagnoseUnreachableTerminus(t *testing.T) {
	s := baseScenario()
	frontiers := []FrontierSnapshot{{Size: 1, BestSoCKWh: 200}, {Size: 0}, {Size: 0}}
	segments := []SegmentEnergySnapshot{
		{FromStationID: "a", ToStationID: "b", EnergyRequiredKWh: 150},
		{FromStationID: "b", ToStationID: "c", EnergyRequiredKWh: 150},
	}
	r := Diagnose(s, frontiers, segments)
	assert.False(t, r.Reachable)
	assert.NotEmpty(t, r.Bottlenecks)
	assert.Equal(t, "a", r.Bottlenecks[0].FromStationID)
}

func TestDiagnoseShortfallSuggestsMenu(t *testing.T) {
	s := baseScenario()
	frontiers := []FrontierSnapshot{{Size: 1, BestSoCKWh: 200}, {Size: 1, BestSoCKWh: 100}, {Size: 1, BestSoCKWh: 30}}
	segments := []SegmentEnergySnapshot{
		{FromStationID: "a", ToStationID: "b", EnergyRequiredKWh: 100},
		{FromStationID: "b", ToStationID: "c", EnergyRequiredKWh: 70},
	}
	r := Diagnose(s, frontiers, segments)
	assert.True(t, r.Reachable)
	assert.InDelta(t, 20.0, r.ShortfallKWh, 1e-9)
	assert.Contains(t, r.Suggestions, sugLowerFinalSoC)
}

func TestDiagnoseCatastrophicDeficit(t *testing.T) {
	s := baseScenario()
	s.InitialSoCKWh = 50
	s.FinalSoCRequiredKWh = 40
	frontiers := []FrontierSnapshot{{Size: 1, BestSoCKWh: 50}, {Size: 1, BestSoCKWh: 10}, {Size: 1}}
	segments := []SegmentEnergySnapshot{
		{FromStationID: "a", ToStationID: "b", EnergyRequiredKWh: 40},
		{FromStationID: "b", ToStationID: "c", EnergyRequiredKWh: 40},
	}
	r := Diagnose(s, frontiers, segments)
	assert.True(t, r.CatastrophicDeficit)
	assert.Contains(t, r.Suggestions, sugEnableReplenishment)
}

func TestDiagnoseOperatingHoursContradiction(t *testing.T) {
	s := baseScenario()
	s.Stations[1].OperatingHours = &model.OperatingHours{Open: 5, Close: 5}
	frontiers := []FrontierSnapshot{{Size: 1, BestSoCKWh: 200}, {Size: 1, BestSoCKWh: 100}, {Size: 1, BestSoCKWh: 50}}
	segments := []SegmentEnergySnapshot{
		{FromStationID: "a", ToStationID: "b", EnergyRequiredKWh: 100},
		{FromStationID: "b", ToStationID: "c", EnergyRequiredKWh: 50},
	}
	r := Diagnose(s, frontiers, segments)
	assert.NotEmpty(t, r.Contradictions)
	assert.Contains(t, r.Suggestions, sugWidenHours)
}

func TestFormatIncludesOutcomeAndSuggestions(t *testing.T) {
	r := Report{Suggestions: []string{sugRaiseCapacity}}
	out := r.Format()
	assert.Contains(t, out, "solve failed")
	assert.Contains(t, out, sugRaiseCapacity)
}
