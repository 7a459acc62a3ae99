// Package chat exposes the assistant over HTTP.
package chat

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rahulverma-dev/finassist/backend/internal/service/assistant"
	"github.com/rahulverma-dev/finassist/backend/pkg/utils"
)

// Handler serves chat turns and the bounded history window.
type Handler struct {
	assistantSvc *assistant.Service
}

// New creates the chat handler.
func New(assistantSvc *assistant.Service) *Handler {
	return &Handler{assistantSvc: assistantSvc}
}

// RegisterRoutes mounts the chat endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleTurn)
	r.Get("/chat/history", h.handleHistory)
}

func (h *Handler) handleTurn(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID  string `json:"userId"`
		Message string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payload.Message = strings.TrimSpace(payload.Message)
	if payload.Message == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}
	if payload.UserID == "" {
		utils.RespondError(w, http.StatusBadRequest, "userId is required")
		return
	}

	turn, err := h.assistantSvc.HandleTurn(r.Context(), payload.UserID, payload.Message)
	if err != nil {
		if errors.Is(err, assistant.ErrEmptyInput) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[chat] turn failed: %v", err)
		utils.RespondError(w, http.StatusBadGateway, "assistant unavailable")
		return
	}

	// A skipped turn (no credential configured) is still a 200: the spec
	// treats it as a silent no-op, not a failure.
	utils.RespondJSON(w, http.StatusOK, turn)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"messages": h.assistantSvc.History(),
	})
}
