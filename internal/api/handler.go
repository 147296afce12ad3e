// Package api provides HTTP handlers for the chat service REST surface.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/bluepixel/estatechat/internal/domain"
	"github.com/bluepixel/estatechat/internal/store"
	"github.com/bluepixel/estatechat/internal/tools"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Handler serves the session, tool-catalog, and health endpoints.
type Handler struct {
	repo     store.Repository
	registry *tools.Registry
}

// NewHandler creates a new Handler with common dependencies.
func NewHandler(repo store.Repository, registry *tools.Registry) *Handler {
	return &Handler{
		repo:     repo,
		registry: registry,
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers the REST endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/sessions", h.HandleCreateSession)
	r.Get("/api/tools", h.HandleToolCatalog)
	r.Get("/health", h.HandleHealth)
}

// HandleCreateSession issues fresh opaque session and user tokens. No
// request body is required.
func (h *Handler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	session := &domain.Session{
		SessionID:  uuid.NewString(),
		UserID:     uuid.NewString(),
		CreatedAt:  now,
		LastSeenAt: now,
	}

	if err := h.repo.CreateSession(r.Context(), session); err != nil {
		slog.Error("Failed to create session", "error", err)
		Error(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	slog.Info("Session created", "session_id", session.SessionID, "user_id", session.UserID)
	JSON(w, http.StatusCreated, map[string]any{
		"sessionId": session.SessionID,
		"userId":    session.UserID,
		"createdAt": session.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// HandleToolCatalog returns the fixed tool list and a count.
func (h *Handler) HandleToolCatalog(w http.ResponseWriter, _ *http.Request) {
	names := h.registry.Names()
	JSON(w, http.StatusOK, map[string]any{
		"tools": names,
		"count": len(names),
	})
}

// HandleHealth returns a fixed status payload.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "estatechat",
	})
}
