package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/api/models"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/progress"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/solver"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/store"
)

// SolveHandler handles scenario solve requests and replay lookups.
type SolveHandler struct {
	store *store.Store // nil means persistence is disabled
	hub   *progress.Hub
}

func NewSolveHandler(st *store.Store, hub *progress.Hub) *SolveHandler {
	return &SolveHandler{store: st, hub: hub}
}

// Solve handles POST /api/v1/solve.
func (h *SolveHandler) Solve(c *gin.Context) {
	var req models.SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	cfg := req.Scenario
	scenario, err := cfg.ToScenario()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_CONFIGURATION", Message: err.Error()},
		})
		return
	}

	id := uuid.NewString()
	opts := solver.Options{}
	if h.hub != nil {
		opts.OnProgress = progress.SolveProgressFunc(h.hub, id)
	}

	plan, report, err := solver.Solve(c.Request.Context(), *scenario, opts)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "CONFIGURATION_ERROR", Message: err.Error()},
		})
		return
	}

	if h.store != nil {
		if err := h.store.SaveOutcome(c.Request.Context(), id, *scenario, plan, report); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: models.ErrorDetail{Code: "PERSISTENCE_ERROR", Message: err.Error()},
			})
			return
		}
	}

	c.JSON(http.StatusOK, models.SolveResponse{ID: id, Plan: plan, Report: report})
}

// GetScenario handles GET /api/v1/scenarios/:id, replaying a past solve.
func (h *SolveHandler) GetScenario(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusNotImplemented, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "PERSISTENCE_DISABLED", Message: "no store configured for this server"},
		})
		return
	}
	id := c.Param("id")
	outcome, err := h.store.LoadOutcome(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "NOT_FOUND", Message: err.Error()},
		})
		return
	}
	c.JSON(http.StatusOK, models.SolveResponse{ID: id, Plan: outcome.Plan, Report: outcome.Report})
}
