package solver

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/model"
)

// WritePlanCSV renders a Plan as a per-station ledger, one row per
// visited station, for spreadsheet inspection (SPEC_FULL.md §4).
func WritePlanCSV(path string, plan *model.Plan) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"station_id",
		"arrival_clock_time",
		"arrival_journey_hours",
		"soc_arriving_kwh",
		"action",
		"containers_swapped",
		"energy_charged_kwh",
		"dwell_hours",
		"base_service_fee",
		"swap_cost",
		"location_premium",
		"energy_cost",
		"degradation_fee",
		"hotelling_cost",
		"peak_multiplier_applied",
		"subscription_discount",
		"step_total",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, st := range plan.Steps {
		row := []string{
			strconv.Itoa(i),
			st.StationID,
			fmtFloat(st.ArrivalClockTime),
			fmtFloat(st.ArrivalJourneyHrs),
			fmtFloat(st.SoCArrivingKWh),
			string(st.Action.Kind),
			strconv.Itoa(st.Action.ContainersSwapped),
			fmtFloat(st.Action.EnergyChargedKWh),
			fmtFloat(st.DwellHours),
			fmtFloat(st.CostBreakdown.BaseServiceFee),
			fmtFloat(st.CostBreakdown.SwapCost),
			fmtFloat(st.CostBreakdown.LocationPremium),
			fmtFloat(st.CostBreakdown.EnergyCost),
			fmtFloat(st.CostBreakdown.DegradationFee),
			fmtFloat(st.CostBreakdown.HotellingCost),
			fmtFloat(st.CostBreakdown.PeakMultiplierApplied),
			fmtFloat(st.CostBreakdown.SubscriptionDiscount),
			fmtFloat(st.CostBreakdown.Total),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
