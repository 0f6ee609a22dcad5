package solver

import "github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/model"

// waitUntilOpen returns the hours to wait if arrivalMod24 precedes the
// station's opening hour, handling a window that wraps past midnight
// (open > close means "open overnight"). Returns 0 if hours are
// absent or the station is already open.
func waitUntilOpen(oh *model.OperatingHours, arrivalMod24 float64) float64 {
	if oh == nil {
		return 0
	}
	if isOpenAt(oh, arrivalMod24) {
		return 0
	}
	wait := oh.Open - arrivalMod24
	if wait < 0 {
		wait += 24
	}
	return wait
}

// isOpenAt reports whether the station's berth window contains hour t.
func isOpenAt(oh *model.OperatingHours, t float64) bool {
	if oh == nil {
		return true
	}
	if oh.Open == oh.Close {
		// Degenerate window; treated as always-open rather than
		// always-closed, since a zero-length window that still
		// admits traffic is the diagnostic's job to flag, not the
		// solver's job to silently prune everything behind.
		return true
	}
	if oh.Open < oh.Close {
		return t >= oh.Open && t < oh.Close
	}
	return t >= oh.Open || t < oh.Close
}

// dwellFits reports whether a berth event starting at startMod24 and
// lasting dwellHours stays within the station's operating window
// (i.e. does not cross close), per spec.md §4.4 step 3's "reject the
// action if dwell would cross close" rule.
func dwellFits(oh *model.OperatingHours, startMod24, dwellHours float64) bool {
	if oh == nil || oh.Open == oh.Close {
		return true
	}
	available := availableHours(oh, startMod24)
	return dwellHours <= available+1e-9
}

// availableHours returns how many hours remain until close, starting
// from startMod24 (which must already be within the window).
func availableHours(oh *model.OperatingHours, startMod24 float64) float64 {
	if oh.Open < oh.Close {
		return oh.Close - startMod24
	}
	// Wraparound window: close is on "the other side" of midnight.
	if startMod24 >= oh.Open {
		return (24 - startMod24) + oh.Close
	}
	return oh.Close - startMod24
}
