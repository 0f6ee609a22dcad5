// Package models defines the JSON request/response envelopes for the
// HTTP API, mirroring the teacher's api/models request/response shape.
package models

import (
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/config"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/diagnostic"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/model"
)

// SolveRequest is the POST /api/v1/solve request body: a scenario in
// the same shape internal/config parses from YAML.
type SolveRequest struct {
	Scenario config.Config `json:"scenario" binding:"required"`
}

// SolveResponse is the POST /api/v1/solve response body: exactly one
// of Plan or Report is non-nil.
type SolveResponse struct {
	ID     string            `json:"id"`
	Plan   *model.Plan       `json:"plan,omitempty"`
	Report *diagnostic.Report `json:"report,omitempty"`
}

// ErrorResponse is the structured JSON error envelope used for every
// non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// StationPreset is one named, ready-to-use station template exposed
// by GET /api/v1/stations/presets.
type StationPreset struct {
	Name    string              `json:"name"`
	Station config.StationConfig `json:"station"`
}
