package handlers

import (
	"net/http"

	services "holidaze/service"
	"holidaze/util"
)

type HealthHandler struct {
	authService *services.AuthService
}

func NewHealthHandler(authService *services.AuthService) *HealthHandler {
	return &HealthHandler{authService: authService}
}

// Ping handles GET /ping
func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	body := map[string]interface{}{"status": "pong"}
	if n, err := h.authService.ActiveSessions(r.Context()); err != nil {
		util.GetLogger().Warnf("[HealthHandler] Could not count sessions: %v", err)
	} else {
		body["activeSessions"] = n
	}
	writeJSON(w, http.StatusOK, body)
}
