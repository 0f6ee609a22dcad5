package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/model"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/solver"
)

// Demo: build a small three-station route in-memory and solve it, to
// show how model, solver, and diagnostic fit together without needing
// an external scenario file.
func main() {
	n := flag.Int("n", 5, "Number of progress events to print before the result")
	flag.Parse()

	stations := []model.Station{
		{
			ID:             "origin",
			DistToNext:     40,
			CurrentSign:    0,
			ContainerCount: 4,
		},
		{
			ID:                     "midpoint",
			DistToNext:             35,
			CurrentSign:            -1,
			SwapAllowed:            true,
			ChargingAllowed:        true,
			PartialSwapAllowed:     true,
			ContainerCount:         4,
			ContainerCapacityKWh:   150,
			ChargedStock:           3,
			ChargingPowerKW:        250,
			HotellingPowerKW:       35,
			QueueTimeHr:            0.1,
			SwapTimePerContainerHr: 0.05,
			MaxDwellHr:             2,
			Pricing: model.PricingParams{
				BaseServiceFee:       20,
				SwapCostPerContainer: 45,
				EnergyCostPerKWh:     0.18,
				PeakHourMultiplier:   1.5,
				PeakStartHour:        17,
				PeakEndHour:          21,
			},
		},
		{
			ID:             "terminus",
			ContainerCount: 4,
		},
	}

	scenario, err := model.NewScenario(model.Scenario{
		Stations:               stations,
		BatteryCapacityKWh:     600,
		MinSoCKWh:              60,
		InitialSoCKWh:          600,
		FinalSoCRequiredKWh:    60,
		DepartureHour:          8,
		CruiseSpeed:            12,
		BaseConsumptionPerUnit: 8,
		SoCStepKWh:             10,
	})
	if err != nil {
		panic(err)
	}

	seen := 0
	opts := solver.Options{OnProgress: func(stationIndex, frontierSize int) {
		if seen < *n {
			fmt.Printf("stage %d: frontier size %d\n", stationIndex, frontierSize)
			seen++
		}
	}}

	plan, report, err := solver.Solve(context.Background(), *scenario, opts)
	if err != nil {
		panic(err)
	}
	if report != nil {
		fmt.Println(report.Format())
		return
	}

	fmt.Printf("\nWinning plan: swaps=%d cost=$%.2f journey=%.2fh\n", plan.SwapCount, plan.TotalCost, plan.TotalJourneyHours)
	for _, step := range plan.Steps {
		fmt.Printf("  %-12s action=%-12s soc=%.1fkWh cost=%.2f\n", step.StationID, step.Action.String(), step.SoCArrivingKWh, step.CostBreakdown.Total)
	}
}
