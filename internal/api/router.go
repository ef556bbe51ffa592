package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/casualfc/matchday/internal/api/handler"
	"github.com/casualfc/matchday/internal/api/middleware"
	"github.com/casualfc/matchday/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	SessionController session.ControllerInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.SessionController)
	playerHandler := handler.NewPlayerHandler(cfg.SessionController)
	matchHandler := handler.NewMatchHandler(cfg.SessionController)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Session routes
	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions", sessionHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", sessionHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/config", sessionHandler.UpdateConfig).Methods(http.MethodPatch)

	// Roster routes
	api.HandleFunc("/sessions/{id}/players", playerHandler.CheckIn).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/players/{playerId}", playerHandler.Update).Methods(http.MethodPatch)
	api.HandleFunc("/sessions/{id}/players/{playerId}", playerHandler.Remove).Methods(http.MethodDelete)

	// Match rotation routes
	api.HandleFunc("/sessions/{id}/matches", matchHandler.Generate).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/matches/{matchId}", matchHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/matches/{matchId}", matchHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/matches/{matchId}/finish", matchHandler.Finish).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/matches/{matchId}/goals", matchHandler.RecordGoal).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
