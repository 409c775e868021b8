package handlers

import (
	"bytes"
	"net/http"

	"github.com/gorilla/mux"

	"holidaze/models"
	services "holidaze/service"
)

const PROFILE_NAME_VAR = "name"

// VenueManagerRequest is the body of PUT /v1/profiles/{name}/venue-manager.
type VenueManagerRequest struct {
	VenueManager bool `json:"venueManager"`
}

type ProfileHandler struct {
	profileService *services.ProfileService
	sessions       *Sessions
}

func NewProfileHandler(profileService *services.ProfileService, sessions *Sessions) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, sessions: sessions}
}

// GetProfile handles GET /v1/profiles/{name}.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessions.Require(w, r)
	if !ok {
		return
	}
	view, err := h.profileService.View(r.Context(), sess, mux.Vars(r)[PROFILE_NAME_VAR])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// UpdateProfile handles PUT /v1/profiles/{name}.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessions.Require(w, r)
	if !ok {
		return
	}
	var form models.ProfileForm
	if !decodeJSON(w, r, &form) {
		return
	}
	p, err := h.profileService.UpdateProfile(r.Context(), sess, mux.Vars(r)[PROFILE_NAME_VAR], form)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// SetVenueManager handles PUT /v1/profiles/{name}/venue-manager.
func (h *ProfileHandler) SetVenueManager(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessions.Require(w, r)
	if !ok {
		return
	}
	var req VenueManagerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := h.profileService.SetVenueManager(r.Context(), sess, mux.Vars(r)[PROFILE_NAME_VAR], req.VenueManager)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// BookingsChart handles GET /v1/profiles/{name}/bookings-chart and answers HTML.
func (h *ProfileHandler) BookingsChart(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessions.Require(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := h.profileService.RenderBookingsChart(r.Context(), sess, mux.Vars(r)[PROFILE_NAME_VAR], &buf); err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
