package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"holidaze/api"
	"holidaze/models"
	"holidaze/util"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		util.GetLogger().Warnf("[Handlers] Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// statusForError maps domain and remote errors to HTTP statuses.
func statusForError(err error) int {
	var ve *models.ValidationError
	var apiErr *api.APIError
	var urlErr *url.Error
	switch {
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrUnauthenticated), errors.Is(err, models.ErrSessionNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrMissingToken), errors.Is(err, models.ErrMissingUserName):
		return http.StatusBadGateway
	case errors.As(err, &apiErr):
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return http.StatusUnprocessableEntity
		}
		return http.StatusBadGateway
	case errors.As(err, &urlErr):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// messageForError returns the text shown to the user for err.
func messageForError(err error) string {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	switch statusForError(err) {
	case http.StatusUnauthorized:
		return "You are not logged in. Please log in to continue."
	case http.StatusForbidden:
		return "You are not allowed to do that."
	case http.StatusNotFound:
		return "Not found."
	case http.StatusBadGateway:
		return "The Holidaze service is unavailable. Please try again later."
	}
	return "Internal server error"
}

// writeServiceError writes err with its mapped status and message.
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		util.GetLogger().Errorf("[Handlers] Request failed: %v", err)
	}
	resp := ErrorResponse{Error: messageForError(err)}
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		resp.Field = ve.Field
	}
	writeJSON(w, status, resp)
}

// decodeJSON reads a JSON request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
