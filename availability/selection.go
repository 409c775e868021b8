package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"holidaze/models"
	"holidaze/models/venue"
)

const DefaultGuests = 1

// Selection is the state of one booking flow on a venue page.
// DateFrom and DateTo are always set or cleared together.
type Selection struct {
	CalendarOpen bool       `json:"calendarOpen"`
	DateFrom     *time.Time `json:"dateFrom"`
	DateTo       *time.Time `json:"dateTo"`
	Guests       int        `json:"guests"`
}

// NewSelection returns a closed calendar, no dates and one guest.
func NewSelection() *Selection {
	return &Selection{Guests: DefaultGuests}
}

func (s *Selection) OpenCalendar()  { s.CalendarOpen = true }
func (s *Selection) CloseCalendar() { s.CalendarOpen = false }

// SelectRange sets both endpoints, truncated to calendar days.
func (s *Selection) SelectRange(from, to time.Time) {
	f, t := Day(from), Day(to)
	s.DateFrom, s.DateTo = &f, &t
}

// Clear drops both endpoints.
func (s *Selection) Clear() {
	s.DateFrom, s.DateTo = nil, nil
}

// Reset returns the selection to its initial state.
func (s *Selection) Reset() {
	*s = Selection{Guests: DefaultGuests}
}

func (s *Selection) HasDates() bool {
	return s.DateFrom != nil && s.DateTo != nil
}

// TotalPrice prices the current selection for v.
func (s *Selection) TotalPrice(v *venue.Venue) float64 {
	return TotalPrice(s.DateFrom, s.DateTo, v.Price)
}

// ParseGuests reads a guest count typed by the user.
func ParseGuests(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, models.NewValidationError("guests", "Number of guests must be a whole number.")
	}
	return n, nil
}

// FirstConflict returns the first day in [from, to] that is already booked.
func FirstConflict(from, to time.Time, bookings []venue.Booking) (time.Time, bool) {
	end := Day(to)
	for d := Day(from); !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsDisabled(d, bookings) {
			return d, true
		}
	}
	return time.Time{}, false
}

// Validate checks that the selection may be submitted for v.
// It returns a *models.ValidationError describing the first problem found.
func (s *Selection) Validate(v *venue.Venue) error {
	if !s.HasDates() {
		return models.NewValidationError("dates", "Please select a valid date range.")
	}
	if s.DateTo.Before(*s.DateFrom) {
		return models.NewValidationError("dates", "Check-out date must not be before check-in date.")
	}
	if day, conflict := FirstConflict(*s.DateFrom, *s.DateTo, v.Bookings); conflict {
		return models.NewValidationError("dates",
			fmt.Sprintf("The selected dates overlap an existing booking (%s is unavailable).", day.Format(DateLayout)))
	}
	if s.Guests < 1 || s.Guests > v.MaxGuests {
		return models.NewValidationError("guests",
			fmt.Sprintf("Number of guests must be between 1 and %d.", v.MaxGuests))
	}
	return nil
}

// ToNewBooking builds the create-booking body. Call Validate first.
func (s *Selection) ToNewBooking(venueID string) venue.NewBooking {
	return venue.NewBooking{
		DateFrom: *s.DateFrom,
		DateTo:   *s.DateTo,
		Guests:   s.Guests,
		VenueID:  venueID,
	}
}
