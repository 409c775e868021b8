package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"holidaze/models"
	services "holidaze/service"
)

type ManagerHandler struct {
	managerService *services.ManagerService
	sessions       *Sessions
}

func NewManagerHandler(managerService *services.ManagerService, sessions *Sessions) *ManagerHandler {
	return &ManagerHandler{managerService: managerService, sessions: sessions}
}

// CreateVenue handles POST /v1/venues.
func (h *ManagerHandler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessions.Require(w, r)
	if !ok {
		return
	}
	var form models.VenueForm
	if !decodeJSON(w, r, &form) {
		return
	}
	v, err := h.managerService.CreateVenue(r.Context(), sess, form)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

// UpdateVenue handles PUT /v1/venues/{id}.
func (h *ManagerHandler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessions.Require(w, r)
	if !ok {
		return
	}
	var form models.VenueForm
	if !decodeJSON(w, r, &form) {
		return
	}
	v, err := h.managerService.UpdateVenue(r.Context(), sess, mux.Vars(r)[VENUE_ID_VAR], form)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// DeleteVenue handles DELETE /v1/venues/{id}.
func (h *ManagerHandler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessions.Require(w, r)
	if !ok {
		return
	}
	if err := h.managerService.DeleteVenue(r.Context(), sess, mux.Vars(r)[VENUE_ID_VAR]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
