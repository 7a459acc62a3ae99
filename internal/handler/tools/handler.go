// Package tools exposes the standalone SIP and EMI calculators.
package tools

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rahulverma-dev/finassist/backend/internal/finance"
	"github.com/rahulverma-dev/finassist/backend/pkg/utils"
)

// Handler serves the calculator endpoints.
type Handler struct{}

// New creates the tools handler.
func New() *Handler {
	return &Handler{}
}

// RegisterRoutes mounts the calculator endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/tools/sip", h.handleSIP)
	r.Post("/tools/emi", h.handleEMI)
}

func (h *Handler) handleSIP(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Monthly    float64  `json:"monthly"`
		Years      int      `json:"years"`
		AnnualRate *float64 `json:"annualRate"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rate := finance.DefaultAnnualReturn
	if payload.AnnualRate != nil {
		rate = *payload.AnnualRate
	}

	futureValue, err := finance.SIPFutureValue(payload.Monthly, payload.Years, rate)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"monthly":     payload.Monthly,
		"years":       payload.Years,
		"annualRate":  rate,
		"futureValue": futureValue,
	})
}

func (h *Handler) handleEMI(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Principal         float64 `json:"principal"`
		AnnualRatePercent float64 `json:"annualRatePercent"`
		TenureYears       int     `json:"tenureYears"`
		IncludeSchedule   bool    `json:"includeSchedule"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := finance.EMI(payload.Principal, payload.AnnualRatePercent, payload.TenureYears)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	response := map[string]any{
		"emi":           result.EMI,
		"totalPayment":  result.TotalPayment,
		"totalInterest": result.TotalInterest,
	}

	if payload.IncludeSchedule {
		schedule, err := finance.AmortizationSchedule(payload.Principal, payload.AnnualRatePercent, payload.TenureYears)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		response["schedule"] = schedule
	}

	utils.RespondJSON(w, http.StatusOK, response)
}
