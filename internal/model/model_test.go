package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/solveerr"
)

func validScenario() Scenario {
	return Scenario{
		Stations: []Station{
			{ID: "origin", DistToNext: 50},
			{ID: "terminus"},
		},
		BatteryCapacityKWh:     100,
		MinSoCKWh:              10,
		InitialSoCKWh:          100,
		FinalSoCRequiredKWh:    20,
		DepartureHour:          8,
		CruiseSpeed:            10,
		BaseConsumptionPerUnit: 2,
		SoCStepKWh:             10,
	}
}

func TestNewScenarioAcceptsValid(t *testing.T) {
	s, err := NewScenario(validScenario())
	assert.NoError(t, err)
	assert.NotNil(t, s)
}

func TestValidateRejectsTooFewStations(t *testing.T) {
	s := validScenario()
	s.Stations = s.Stations[:1]
	assert.Error(t, s.Validate())
}

func TestValidateReturnsConfigurationErrorType(t *testing.T) {
	s := validScenario()
	s.BatteryCapacityKWh = 0
	err := s.Validate()
	var cfgErr *solveerr.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr), "Validate must return a *solveerr.ConfigurationError")
	assert.Contains(t, cfgErr.Error(), "battery_capacity_kwh")
}

func TestValidateRejectsBadCapacity(t *testing.T) {
	s := validScenario()
	s.BatteryCapacityKWh = 0
	assert.Error(t, s.Validate())
}

func TestValidateRejectsMinSoCAboveCapacity(t *testing.T) {
	s := validScenario()
	s.MinSoCKWh = s.BatteryCapacityKWh + 1
	assert.Error(t, s.Validate())
}

func TestValidateRejectsInitialSoCOutOfRange(t *testing.T) {
	s := validScenario()
	s.InitialSoCKWh = s.MinSoCKWh - 1
	assert.Error(t, s.Validate())
}

func TestValidateRejectsFinalSoCOutOfRange(t *testing.T) {
	s := validScenario()
	s.FinalSoCRequiredKWh = s.BatteryCapacityKWh + 1
	assert.Error(t, s.Validate())
}

func TestValidateRejectsBadDepartureHour(t *testing.T) {
	s := validScenario()
	s.DepartureHour = 24
	assert.Error(t, s.Validate())
}

func TestValidateRejectsNonPositiveSoCStep(t *testing.T) {
	s := validScenario()
	s.SoCStepKWh = 0
	assert.Error(t, s.Validate())
}

func TestValidateRejectsNegativeDistToNext(t *testing.T) {
	s := validScenario()
	s.Stations[0].DistToNext = -1
	assert.Error(t, s.Validate())
}

func TestValidateRejectsChargedStockExceedingContainerCount(t *testing.T) {
	s := validScenario()
	s.Stations[0].ContainerCount = 2
	s.Stations[0].ChargedStock = 3
	assert.Error(t, s.Validate())
}

func TestValidateRejectsSubscriptionDiscountOutOfRange(t *testing.T) {
	s := validScenario()
	s.Stations[0].Pricing.SubscriptionDiscount = 1
	assert.Error(t, s.Validate())
}

func TestOriginAndTerminus(t *testing.T) {
	s := validScenario()
	assert.Equal(t, "origin", s.Origin().ID)
	assert.Equal(t, "terminus", s.Terminus().ID)
	assert.Equal(t, 1, s.LastIndex())
}

func TestClockMod24WraparoundAfterMidnight(t *testing.T) {
	c := Clock{Linear: 20}
	assert.InDelta(t, 4.0, c.Mod24(8), 1e-9)
}

func TestClockMod24NoWraparound(t *testing.T) {
	c := Clock{Linear: 2}
	assert.InDelta(t, 10.0, c.Mod24(8), 1e-9)
}

func TestClockAddAccumulates(t *testing.T) {
	c := Clock{Linear: 5}
	c2 := c.Add(3)
	assert.InDelta(t, 8.0, c2.Linear, 1e-9)
	assert.InDelta(t, 5.0, c.Linear, 1e-9)
}

func TestStationHasReplenishment(t *testing.T) {
	assert.True(t, Station{SwapAllowed: true}.HasReplenishment())
	assert.True(t, Station{ChargingAllowed: true}.HasReplenishment())
	assert.False(t, Station{}.HasReplenishment())
}
