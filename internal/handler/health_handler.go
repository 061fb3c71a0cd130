package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/frenzyhq/frenzy-backend/internal/middleware"
)

// HealthHandler serves liveness checks plus a protected variant that proves
// a bearer token round-trips through the auth middleware.
type HealthHandler struct {
	started time.Time
}

func NewHealthHandler(started time.Time) *HealthHandler {
	return &HealthHandler{started: started}
}

// Check reports service status and uptime in seconds.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"uptime": time.Since(h.started).Seconds(),
	})
}

// Protected echoes the authenticated user's id from the request context.
func (h *HealthHandler) Protected(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"message": "You are authenticated!",
		"userId":  userID,
	})
}
