// Package goals exposes the cloud-synced goal tracker over HTTP.
package goals

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rahulverma-dev/finassist/backend/internal/model/goal"
	goalservice "github.com/rahulverma-dev/finassist/backend/internal/service/goals"
	"github.com/rahulverma-dev/finassist/backend/internal/store"
	"github.com/rahulverma-dev/finassist/backend/pkg/utils"
)

// Handler serves goal CRUD endpoints.
type Handler struct {
	goalSvc *goalservice.Service
}

// New creates the goals handler.
func New(goalSvc *goalservice.Service) *Handler {
	return &Handler{goalSvc: goalSvc}
}

// RegisterRoutes mounts the goal endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/goals", h.handleAdd)
	r.Get("/goals", h.handleList)
	r.Patch("/goals/{goalID}", h.handleUpdateSaved)
}

// goalView decorates a stored goal with its display progress.
type goalView struct {
	goal.FinancialGoal
	Progress float64 `json:"progress"`
}

func view(g *goal.FinancialGoal) goalView {
	return goalView{FinancialGoal: *g, Progress: g.Progress()}
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name           string  `json:"name"`
		Target         float64 `json:"target"`
		DurationMonths int     `json:"durationMonths"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.goalSvc.Add(r.Context(), payload.Name, payload.Target, payload.DurationMonths)
	if err != nil {
		if isValidationError(err) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[goals] add failed: %v", err)
		utils.RespondError(w, http.StatusBadGateway, "goal store unavailable")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, view(created))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goalSvc.List(r.Context())
	if err != nil {
		log.Printf("[goals] list failed: %v", err)
		utils.RespondError(w, http.StatusBadGateway, "goal store unavailable")
		return
	}

	views := make([]goalView, 0, len(goals))
	for _, g := range goals {
		views = append(views, view(g))
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{"goals": views})
}

func (h *Handler) handleUpdateSaved(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "goalID")

	var payload struct {
		Saved float64 `json:"saved"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.goalSvc.UpdateSaved(r.Context(), goalID, payload.Saved)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrGoalNotFound):
			utils.RespondError(w, http.StatusNotFound, "goal not found")
		case isValidationError(err):
			utils.RespondError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("[goals] update failed: %v", err)
			utils.RespondError(w, http.StatusBadGateway, "goal store unavailable")
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, view(updated))
}

func isValidationError(err error) bool {
	return errors.Is(err, goalservice.ErrNameRequired) ||
		errors.Is(err, goalservice.ErrInvalidTarget) ||
		errors.Is(err, goalservice.ErrInvalidMonths) ||
		errors.Is(err, goalservice.ErrNegativeAmount)
}
