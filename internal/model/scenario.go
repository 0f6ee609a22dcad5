package model

import (
	"fmt"

	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/solveerr"
)

// Scenario is the immutable input to one solve. Constructing it via
// NewScenario validates the ConfigurationError class of failures
// (spec.md §7.1) up front, before any DP work starts.
type Scenario struct {
	Stations []Station

	BatteryCapacityKWh    float64
	MinSoCKWh             float64
	InitialSoCKWh         float64
	FinalSoCRequiredKWh   float64
	DepartureHour         float64 // [0,24)
	CruiseSpeed           float64
	BaseConsumptionPerUnit float64
	SoCStepKWh            float64
	AllowHybridSwapCharge bool

	// TimeStepHours buckets arrival clock-time for the DP frontier key
	// (0 = discretize.NewTimeGrid's default of 0.05h).
	TimeStepHours float64

	// MaxFrontierSize caps |F[i]| as a safety valve (0 = unbounded).
	MaxFrontierSize int
}

// NewScenario validates s and returns a ConfigurationError-class error
// if it is self-contradictory. The core never constructs a Scenario
// without running this check.
func NewScenario(s Scenario) (*Scenario, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate implements the ConfigurationError checks from spec.md §7.1.
// Every rejection is a *solveerr.ConfigurationError so callers can
// errors.As into the same value the rest of the core exhausts over
// (solveerr.ConfigurationError / Infeasible / Cancelled /
// ResourceExhausted), rather than a bare string error only Validate's
// caller happens to know the shape of.
func (s Scenario) Validate() error {
	if len(s.Stations) < 2 {
		return configErr("scenario must have at least two stations (origin and terminus), got %d", len(s.Stations))
	}
	if s.BatteryCapacityKWh <= 0 {
		return configErr("battery_capacity_kwh must be > 0")
	}
	if s.MinSoCKWh < 0 {
		return configErr("min_soc_kwh must be >= 0")
	}
	if s.MinSoCKWh > s.BatteryCapacityKWh {
		return configErr("min_soc_kwh (%.3f) exceeds battery_capacity_kwh (%.3f)", s.MinSoCKWh, s.BatteryCapacityKWh)
	}
	if s.InitialSoCKWh < s.MinSoCKWh || s.InitialSoCKWh > s.BatteryCapacityKWh {
		return configErr("initial_soc_kwh (%.3f) outside [min_soc_kwh, capacity] = [%.3f, %.3f]", s.InitialSoCKWh, s.MinSoCKWh, s.BatteryCapacityKWh)
	}
	if s.FinalSoCRequiredKWh < s.MinSoCKWh || s.FinalSoCRequiredKWh > s.BatteryCapacityKWh {
		return configErr("final_soc_required_kwh (%.3f) outside [min_soc_kwh, capacity] = [%.3f, %.3f]", s.FinalSoCRequiredKWh, s.MinSoCKWh, s.BatteryCapacityKWh)
	}
	if s.DepartureHour < 0 || s.DepartureHour >= 24 {
		return configErr("departure_hour must be in [0,24), got %.3f", s.DepartureHour)
	}
	if s.CruiseSpeed <= 0 {
		return configErr("cruise_speed must be > 0")
	}
	if s.BaseConsumptionPerUnit <= 0 {
		return configErr("base_consumption_per_unit must be > 0")
	}
	if s.SoCStepKWh <= 0 || s.SoCStepKWh > s.BatteryCapacityKWh {
		return configErr("soc_step_kwh must be in (0, capacity], got %.6f", s.SoCStepKWh)
	}
	for i, st := range s.Stations {
		if i < len(s.Stations)-1 && st.DistToNext < 0 {
			return configErr("station %q has negative dist_to_next (%.3f)", st.ID, st.DistToNext)
		}
		if st.CurrentSign < -1 || st.CurrentSign > 1 {
			return configErr("station %q has invalid current_sign %d (must be -1, 0, or 1)", st.ID, st.CurrentSign)
		}
		if st.ContainerCount < 0 || st.ChargedStock < 0 {
			return configErr("station %q has negative container_count or charged_stock", st.ID)
		}
		if st.ChargedStock > st.ContainerCount {
			return configErr("station %q charged_stock (%d) exceeds container_count (%d)", st.ID, st.ChargedStock, st.ContainerCount)
		}
		if st.QueueTimeHr < 0 || st.SwapTimePerContainerHr < 0 || st.MaxDwellHr < 0 {
			return configErr("station %q has a negative dwell-time parameter", st.ID)
		}
		if st.OperatingHours != nil {
			oh := st.OperatingHours
			if oh.Open < 0 || oh.Open >= 24 || oh.Close < 0 || oh.Close >= 24 {
				return configErr("station %q operating hours must be within [0,24)", st.ID)
			}
		}
		if st.Pricing.SubscriptionDiscount < 0 || st.Pricing.SubscriptionDiscount >= 1 {
			return configErr("station %q subscription_discount must be in [0,1)", st.ID)
		}
		if st.Pricing.PeakHourMultiplier < 0 {
			return configErr("station %q peak_hour_multiplier must be >= 0", st.ID)
		}
	}
	return nil
}

func configErr(format string, args ...interface{}) error {
	return &solveerr.ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// Origin and Terminus are convenience accessors over Stations.
func (s Scenario) Origin() Station  { return s.Stations[0] }
func (s Scenario) Terminus() Station { return s.Stations[len(s.Stations)-1] }
func (s Scenario) LastIndex() int    { return len(s.Stations) - 1 }
