package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	chathandler "github.com/rahulverma-dev/finassist/backend/internal/handler/chat"
	goalhandler "github.com/rahulverma-dev/finassist/backend/internal/handler/goals"
	toolhandler "github.com/rahulverma-dev/finassist/backend/internal/handler/tools"
	"github.com/rahulverma-dev/finassist/backend/internal/service/assistant"
	goalservice "github.com/rahulverma-dev/finassist/backend/internal/service/goals"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(assistantSvc *assistant.Service, goalSvc *goalservice.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}).Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(api chi.Router) {
		chathandler.New(assistantSvc).RegisterRoutes(api)
		toolhandler.New().RegisterRoutes(api)
		goalhandler.New(goalSvc).RegisterRoutes(api)
	})

	return r
}
