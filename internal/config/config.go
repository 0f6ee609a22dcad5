// Package config loads a Scenario from YAML, the on-disk shape
// operators author scenarios in before they are validated into
// internal/model.Scenario.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/model"
)

// Config is the on-disk YAML shape for a scenario file. It also
// doubles as the JSON request/response shape for the HTTP API
// (internal/api/handlers), so every field carries both tags.
type Config struct {
	// StationsFile, if set, is loaded and its stations are prepended to
	// Stations (lets an operator keep a shared route file and append
	// scenario-specific stations after it). A relative path is resolved
	// against the scenario file's directory. The two lists are
	// concatenated, not merged by id: a station in Stations does not
	// replace a station of the same id from the file.
	StationsFile string          `yaml:"stations_file" json:"stations_file,omitempty"`
	Stations     []StationConfig `yaml:"stations" json:"stations"`

	BatteryCapacityKWh     float64 `yaml:"battery_capacity_kwh" json:"battery_capacity_kwh"`
	MinSoCKWh              float64 `yaml:"min_soc_kwh" json:"min_soc_kwh"`
	InitialSoCKWh          float64 `yaml:"initial_soc_kwh" json:"initial_soc_kwh"`
	FinalSoCRequiredKWh    float64 `yaml:"final_soc_required_kwh" json:"final_soc_required_kwh"`
	DepartureHour          float64 `yaml:"departure_hour" json:"departure_hour"`
	CruiseSpeed            float64 `yaml:"cruise_speed" json:"cruise_speed"`
	BaseConsumptionPerUnit float64 `yaml:"base_consumption_per_unit" json:"base_consumption_per_unit"`
	SoCStepKWh             float64 `yaml:"soc_step_kwh" json:"soc_step_kwh"`
	TimeStepHours          float64 `yaml:"time_step_hours" json:"time_step_hours,omitempty"`
	AllowHybridSwapCharge  bool    `yaml:"allow_hybrid_swap_charge" json:"allow_hybrid_swap_charge,omitempty"`
	MaxFrontierSize        int     `yaml:"max_frontier_size" json:"max_frontier_size,omitempty"`
}

type OperatingHoursConfig struct {
	Open  float64 `yaml:"open" json:"open"`
	Close float64 `yaml:"close" json:"close"`
}

type PricingConfig struct {
	BaseServiceFee              float64 `yaml:"base_service_fee" json:"base_service_fee,omitempty"`
	SwapCostPerContainer        float64 `yaml:"swap_cost_per_container" json:"swap_cost_per_container,omitempty"`
	LocationPremiumPerContainer float64 `yaml:"location_premium_per_container" json:"location_premium_per_container,omitempty"`
	EnergyCostPerKWh            float64 `yaml:"energy_cost_per_kwh" json:"energy_cost_per_kwh,omitempty"`
	DegradationFeePerKWh        float64 `yaml:"degradation_fee_per_kwh" json:"degradation_fee_per_kwh,omitempty"`
	SubscriptionDiscount        float64 `yaml:"subscription_discount" json:"subscription_discount,omitempty"`
	PeakHourMultiplier          float64 `yaml:"peak_hour_multiplier" json:"peak_hour_multiplier,omitempty"`
	PeakStartHour               float64 `yaml:"peak_start_hour" json:"peak_start_hour,omitempty"`
	PeakEndHour                 float64 `yaml:"peak_end_hour" json:"peak_end_hour,omitempty"`
}

type StationConfig struct {
	ID string `yaml:"id" json:"id"`

	DistToNext  float64 `yaml:"dist_to_next" json:"dist_to_next,omitempty"`
	CurrentSign int     `yaml:"current_sign" json:"current_sign,omitempty"`

	SwapAllowed        bool `yaml:"swap_allowed" json:"swap_allowed,omitempty"`
	ChargingAllowed    bool `yaml:"charging_allowed" json:"charging_allowed,omitempty"`
	PartialSwapAllowed bool `yaml:"partial_swap_allowed" json:"partial_swap_allowed,omitempty"`

	ContainerCount       int     `yaml:"container_count" json:"container_count,omitempty"`
	ContainerCapacityKWh float64 `yaml:"container_capacity_kwh" json:"container_capacity_kwh,omitempty"`
	ChargedStock         int     `yaml:"charged_stock" json:"charged_stock,omitempty"`

	ChargingPowerKW  float64 `yaml:"charging_power_kw" json:"charging_power_kw,omitempty"`
	HotellingPowerKW float64 `yaml:"hotelling_power_kw" json:"hotelling_power_kw,omitempty"`

	OperatingHours *OperatingHoursConfig `yaml:"operating_hours" json:"operating_hours,omitempty"`

	QueueTimeHr            float64 `yaml:"queue_time_hr" json:"queue_time_hr,omitempty"`
	SwapTimePerContainerHr float64 `yaml:"swap_time_per_container_hr" json:"swap_time_per_container_hr,omitempty"`
	MaxDwellHr             float64 `yaml:"max_dwell_hr" json:"max_dwell_hr,omitempty"`

	Pricing PricingConfig `yaml:"pricing" json:"pricing,omitempty"`
}

// Load reads path, merges in StationsFile if present, and validates
// the result into a model.Scenario via model.NewScenario.
func Load(path string) (*model.Scenario, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	return c.ToScenario()
}

// ToScenario converts the parsed YAML shape into a validated
// model.Scenario.
func (c *Config) ToScenario() (*model.Scenario, error) {
	return model.NewScenario(c.toScenario())
}

// LoadUnchecked reads and merges a scenario file without validating
// it, for debugging or re-serializing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parsing scenario file %s: %w", path, err)
	}
	if c.StationsFile != "" {
		stationsPath := c.StationsFile
		if !filepath.IsAbs(stationsPath) {
			stationsPath = filepath.Join(filepath.Dir(path), stationsPath)
		}
		extra, err := loadStationsFile(stationsPath)
		if err != nil {
			return nil, err
		}
		c.Stations = append(extra, c.Stations...)
	}
	if c.TimeStepHours == 0 {
		c.TimeStepHours = 0.05
	}
	return &c, nil
}

type stationsFileWrapper struct {
	Stations []StationConfig `yaml:"stations"`
}

func loadStationsFile(path string) ([]StationConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading stations file %s: %w", path, err)
	}
	var w stationsFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("parsing stations file %s: %w", path, err)
	}
	return w.Stations, nil
}

func (c *Config) toScenario() model.Scenario {
	stations := make([]model.Station, len(c.Stations))
	for i, sc := range c.Stations {
		var oh *model.OperatingHours
		if sc.OperatingHours != nil {
			oh = &model.OperatingHours{Open: sc.OperatingHours.Open, Close: sc.OperatingHours.Close}
		}
		stations[i] = model.Station{
			ID:                     sc.ID,
			DistToNext:             sc.DistToNext,
			CurrentSign:            sc.CurrentSign,
			SwapAllowed:            sc.SwapAllowed,
			ChargingAllowed:        sc.ChargingAllowed,
			PartialSwapAllowed:     sc.PartialSwapAllowed,
			ContainerCount:         sc.ContainerCount,
			ContainerCapacityKWh:   sc.ContainerCapacityKWh,
			ChargedStock:           sc.ChargedStock,
			ChargingPowerKW:        sc.ChargingPowerKW,
			HotellingPowerKW:       sc.HotellingPowerKW,
			OperatingHours:         oh,
			QueueTimeHr:            sc.QueueTimeHr,
			SwapTimePerContainerHr: sc.SwapTimePerContainerHr,
			MaxDwellHr:             sc.MaxDwellHr,
			Pricing: model.PricingParams{
				BaseServiceFee:              sc.Pricing.BaseServiceFee,
				SwapCostPerContainer:        sc.Pricing.SwapCostPerContainer,
				LocationPremiumPerContainer: sc.Pricing.LocationPremiumPerContainer,
				EnergyCostPerKWh:            sc.Pricing.EnergyCostPerKWh,
				DegradationFeePerKWh:        sc.Pricing.DegradationFeePerKWh,
				SubscriptionDiscount:        sc.Pricing.SubscriptionDiscount,
				PeakHourMultiplier:          sc.Pricing.PeakHourMultiplier,
				PeakStartHour:               sc.Pricing.PeakStartHour,
				PeakEndHour:                 sc.Pricing.PeakEndHour,
			},
		}
	}

	return model.Scenario{
		Stations:               stations,
		BatteryCapacityKWh:     c.BatteryCapacityKWh,
		MinSoCKWh:              c.MinSoCKWh,
		InitialSoCKWh:          c.InitialSoCKWh,
		FinalSoCRequiredKWh:    c.FinalSoCRequiredKWh,
		DepartureHour:          c.DepartureHour,
		CruiseSpeed:            c.CruiseSpeed,
		BaseConsumptionPerUnit: c.BaseConsumptionPerUnit,
		SoCStepKWh:             c.SoCStepKWh,
		TimeStepHours:          c.TimeStepHours,
		AllowHybridSwapCharge:  c.AllowHybridSwapCharge,
		MaxFrontierSize:        c.MaxFrontierSize,
	}
}
