package api

import (
	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/rgehrsitz/eisim/internal/output"
)

// SimulateRequest is the body of POST /api/simulate. Regimes left out take
// the same defaults as in a simulation file.
type SimulateRequest struct {
	Name     string `json:"name,omitempty"`
	Language string `json:"language,omitempty"`
	domain.SimulationInput
}

// SimulateResponse is the resolved report for one simulation.
type SimulateResponse struct {
	Language string `json:"language"`
	*output.Report
}

// ThresholdsResponse lists the ceilings and rates that apply to one activity.
type ThresholdsResponse struct {
	ActivityType domain.BusinessActivityType `json:"activity_type"`
	Language     string                      `json:"language"`
	DataYear     int                         `json:"data_year"`
	Displays     output.ThresholdView        `json:"displays"`
	Summary      map[string]string           `json:"summary"`
}

// Option is a regime or activity code with its display label.
type Option struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// ActivityRegimes is an activity and the tax regimes available to it.
type ActivityRegimes struct {
	Option
	TaxRegimes []Option `json:"tax_regimes"`
}

// RegimesResponse is the body of GET /api/regimes.
type RegimesResponse struct {
	Language      string            `json:"language"`
	Activities    []ActivityRegimes `json:"activities"`
	SocialRegimes []Option          `json:"social_regimes"`
	VatRegimes    []Option          `json:"vat_regimes"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version,omitempty"`
	DataYear int    `json:"data_year"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
