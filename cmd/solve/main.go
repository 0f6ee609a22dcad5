package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/analysis"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/config"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/solver"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/solveerr"
)

// exitOnConfigError prints a clean message and exits for the one
// error-kind result the core returns as a Go error (spec.md §1.7);
// anything else is unexpected and still panics.
func exitOnConfigError(err error) {
	var cfgErr *solveerr.ConfigurationError
	if errors.As(err, &cfgErr) {
		fmt.Println(cfgErr.Error())
		os.Exit(1)
	}
	panic(err)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "solve":
		cmdSolve(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  solve solve --scenario scenario.yaml --out results/plan.csv")
	fmt.Println("  solve rank --scenario scenario.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - solve prints the winning plan or the infeasibility diagnostic")
	fmt.Println("  - rank compares total cost across per-station replenishment toggles")
}

func cmdSolve(args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	scenarioPath := fs.String("scenario", "", "Path to YAML scenario")
	outPath := fs.String("out", "", "Optional path to write plan CSV")
	_ = fs.Parse(args)

	if *scenarioPath == "" {
		fmt.Println("--scenario is required")
		os.Exit(2)
	}

	scenario, err := config.Load(*scenarioPath)
	if err != nil {
		exitOnConfigError(err)
	}

	plan, report, err := solver.Solve(context.Background(), *scenario, solver.Options{})
	if err != nil {
		exitOnConfigError(err)
	}

	if report != nil {
		fmt.Print(report.Format())
		os.Exit(1)
	}

	fmt.Printf("Swaps=%d TotalCost=$%.2f JourneyHours=%.2f ArrivalClock=%.2f\n",
		plan.SwapCount, plan.TotalCost, plan.TotalJourneyHours, plan.ArrivalClockTime)
	for i, step := range plan.Steps {
		fmt.Printf("  %2d %-12s t=%6.2fh soc=%8.2fkWh action=%-12s dwell=%5.2fh cost=%8.2f\n",
			i, step.StationID, step.ArrivalJourneyHrs, step.SoCArrivingKWh, step.Action.String(), step.DwellHours, step.CostBreakdown.Total)
	}

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := solver.WritePlanCSV(*outPath, plan); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote plan CSV: %s\n", *outPath)
	}
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	scenarioPath := fs.String("scenario", "", "Path to YAML scenario")
	_ = fs.Parse(args)

	if *scenarioPath == "" {
		fmt.Println("--scenario is required")
		os.Exit(2)
	}

	scenario, err := config.Load(*scenarioPath)
	if err != nil {
		exitOnConfigError(err)
	}

	outcomes, err := analysis.RankReplenishmentToggles(context.Background(), *scenario)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-20s %-7s %-7s %-9s %-10s\n", "variation", "swap", "charge", "feasible", "totalcost")
	for _, o := range outcomes {
		fmt.Printf("%-20s %-7v %-7v %-9v %-10.2f\n", o.StationID, o.SwapAllowed, o.ChargingAllowed, o.Feasible, o.TotalCost)
	}
}
