package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/api/models"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/config"
)

// stationPresets is a small, fixed catalog of ready-to-use station
// templates, the way the teacher's battery examples ship canonical
// presets a caller can start from.
var stationPresets = []models.StationPreset{
	{
		Name: "urban-ferry-berth",
		Station: config.StationConfig{
			SwapAllowed:            true,
			ChargingAllowed:        true,
			PartialSwapAllowed:     true,
			ContainerCount:         4,
			ContainerCapacityKWh:   150,
			ChargedStock:           4,
			ChargingPowerKW:        300,
			HotellingPowerKW:       40,
			QueueTimeHr:            0.1,
			SwapTimePerContainerHr: 0.05,
			MaxDwellHr:             2,
		},
	},
	{
		Name: "coastal-swap-only",
		Station: config.StationConfig{
			SwapAllowed:            true,
			PartialSwapAllowed:     false,
			ContainerCount:         2,
			ContainerCapacityKWh:   200,
			ChargedStock:           2,
			HotellingPowerKW:       25,
			QueueTimeHr:            0.15,
			SwapTimePerContainerHr: 0.1,
			MaxDwellHr:             1,
		},
	},
	{
		Name: "grid-charge-only",
		Station: config.StationConfig{
			ChargingAllowed:  true,
			ChargingPowerKW:  150,
			HotellingPowerKW: 20,
			QueueTimeHr:      0.2,
			MaxDwellHr:       4,
		},
	},
}

// ListStationPresets handles GET /api/v1/stations/presets.
func ListStationPresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": stationPresets})
}
