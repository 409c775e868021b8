package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"holidaze/availability"
	"holidaze/models"
	services "holidaze/service"
)

const (
	QUERY_ARG    = "q"
	LOCATION_ARG = "location"
	RATING_ARG   = "rating"
	GUESTS_ARG   = "guests"
	PRICE_ARG    = "price"
	YEAR_ARG     = "year"
	MONTH_ARG    = "month"
	VENUE_ID_VAR = "id"
)

// SelectionRequest is a booking selection as sent by the browser.
// Dates are YYYY-MM-DD. A missing guest count means one guest.
type SelectionRequest struct {
	CalendarOpen bool   `json:"calendarOpen"`
	DateFrom     string `json:"dateFrom"`
	DateTo       string `json:"dateTo"`
	Guests       *int   `json:"guests"`
}

// ToSelection parses the request into selection state.
func (req SelectionRequest) ToSelection() (*availability.Selection, error) {
	sel := availability.NewSelection()
	sel.CalendarOpen = req.CalendarOpen
	if req.Guests != nil {
		sel.Guests = *req.Guests
	}
	if req.DateFrom == "" || req.DateTo == "" {
		return sel, nil
	}
	from, err := availability.ParseDay(req.DateFrom)
	if err != nil {
		return nil, models.NewValidationError("dateFrom", "Please select a valid date range.")
	}
	to, err := availability.ParseDay(req.DateTo)
	if err != nil {
		return nil, models.NewValidationError("dateTo", "Please select a valid date range.")
	}
	sel.SelectRange(from, to)
	return sel, nil
}

// CalendarResponse is one month of bookable days.
type CalendarResponse struct {
	VenueID string              `json:"venueId"`
	Year    int                 `json:"year"`
	Month   int                 `json:"month"`
	Days    []availability.Cell `json:"days"`
}

type VenueHandler struct {
	venueService     *services.VenueService
	venuePageService *services.VenuePageService
	sessions         *Sessions
	now              func() time.Time
}

func NewVenueHandler(
	venueService *services.VenueService,
	venuePageService *services.VenuePageService,
	sessions *Sessions) *VenueHandler {

	return &VenueHandler{
		venueService:     venueService,
		venuePageService: venuePageService,
		sessions:         sessions,
		now:              time.Now,
	}
}

// Browse handles GET /v1/venues.
func (h *VenueHandler) Browse(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	raw := models.RawFilterInput{
		Location: vals.Get(LOCATION_ARG),
		Rating:   vals.Get(RATING_ARG),
		Guests:   vals.Get(GUESTS_ARG),
		Price:    vals.Get(PRICE_ARG),
	}

	result := h.venueService.Browse(r.Context(), vals.Get(QUERY_ARG), raw)

	status := http.StatusOK
	if result.Status == services.LoadStatusFailed {
		status = http.StatusBadGateway
	}
	writeJSON(w, status, result)
}

func (h *VenueHandler) loadVenue(w http.ResponseWriter, r *http.Request) (services.VenuePage, bool) {
	page := h.venuePageService.LoadVenue(r.Context(), h.sessions.Optional(r), mux.Vars(r)[VENUE_ID_VAR])
	if page.Status == services.LoadStatusLoaded {
		return page, true
	}
	status := http.StatusBadGateway
	if errors.Is(page.Err, models.ErrNotFound) {
		status = http.StatusNotFound
	}
	writeJSON(w, status, page)
	return page, false
}

// GetVenue handles GET /v1/venues/{id}.
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	page, ok := h.loadVenue(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Calendar handles GET /v1/venues/{id}/calendar?year=&month=.
// Missing arguments default to the current month.
func (h *VenueHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	year, month, ok := h.parseMonth(w, r)
	if !ok {
		return
	}
	page, ok := h.loadVenue(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, CalendarResponse{
		VenueID: page.Venue.ID,
		Year:    year,
		Month:   int(month),
		Days:    h.venuePageService.Calendar(page.Venue, year, month),
	})
}

func (h *VenueHandler) parseMonth(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	now := h.now().UTC()
	year, month := now.Year(), now.Month()
	vals := r.URL.Query()

	if s := vals.Get(YEAR_ARG); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil || y < 1 || y > 9999 {
			writeError(w, http.StatusBadRequest, "Invalid argument "+YEAR_ARG)
			return 0, 0, false
		}
		year = y
	}
	if s := vals.Get(MONTH_ARG); s != "" {
		m, err := strconv.Atoi(s)
		if err != nil || m < 1 || m > 12 {
			writeError(w, http.StatusBadRequest, "Invalid argument "+MONTH_ARG)
			return 0, 0, false
		}
		month = time.Month(m)
	}
	return year, month, true
}

func (h *VenueHandler) readSelection(w http.ResponseWriter, r *http.Request) (*availability.Selection, bool) {
	var req SelectionRequest
	if !decodeJSON(w, r, &req) {
		return nil, false
	}
	sel, err := req.ToSelection()
	if err != nil {
		writeServiceError(w, err)
		return nil, false
	}
	return sel, true
}

// Quote handles POST /v1/venues/{id}/quote.
func (h *VenueHandler) Quote(w http.ResponseWriter, r *http.Request) {
	sel, ok := h.readSelection(w, r)
	if !ok {
		return
	}
	page, ok := h.loadVenue(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.venuePageService.Quote(page.Venue, sel))
}

// Book handles POST /v1/venues/{id}/bookings.
func (h *VenueHandler) Book(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessions.Require(w, r)
	if !ok {
		return
	}
	sel, ok := h.readSelection(w, r)
	if !ok {
		return
	}
	page, ok := h.loadVenue(w, r)
	if !ok {
		return
	}

	result := h.venuePageService.Book(r.Context(), sess, page.Venue, sel)

	status := http.StatusCreated
	switch result.Status {
	case services.BookingStatusRejected:
		status = http.StatusUnprocessableEntity
		if errors.Is(result.Err, models.ErrForbidden) {
			status = http.StatusForbidden
		}
	case services.BookingStatusFailed:
		status = http.StatusBadGateway
	}
	writeJSON(w, status, result)
}
