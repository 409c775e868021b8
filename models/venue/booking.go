package venue

import "time"

// Booking is a reservation of a venue for a closed range of calendar days.
type Booking struct {
	ID       string    `json:"id"`
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`

	Created time.Time `json:"created,omitempty"`
	Updated time.Time `json:"updated,omitempty"`

	// Back-references, present only when expanded by the API.
	Venue    *Venue      `json:"venue,omitempty"`
	Customer *ProfileRef `json:"customer,omitempty"`
}

// NewBooking is the body of a create-booking request.
type NewBooking struct {
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	VenueID  string    `json:"venueId"`
}
