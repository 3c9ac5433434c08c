package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// Health check
	r.Get("/health", s.handleHealth)

	// Light endpoints
	r.Route("/api/light", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Get("/capabilities", s.handleCapabilities)
		r.Get("/history", s.handleHistory)
		r.Post("/power", s.handleSetPower)
		r.Post("/brightness", s.handleSetBrightness)
		r.Post("/temperature", s.handleSetTemperature)
		r.Post("/mode", s.handleSetMode)
		r.Put("/settings", s.handleUpdateSettings)
	})

	// WebSocket for real-time state events
	r.Get("/ws", s.handleWebSocket)

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}
