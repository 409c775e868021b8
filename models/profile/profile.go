package profile

import "holidaze/models/venue"

// Profile is a Holidaze user. Venues and Bookings are only filled when expanded.
type Profile struct {
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Bio          string          `json:"bio,omitempty"`
	Avatar       *venue.Media    `json:"avatar,omitempty"`
	Banner       *venue.Media    `json:"banner,omitempty"`
	VenueManager bool            `json:"venueManager"`
	Venues       []venue.Venue   `json:"venues,omitempty"`
	Bookings     []venue.Booking `json:"bookings,omitempty"`
}

// Update is the body of PUT /holidaze/profiles/{name}. Nil fields are left untouched.
type Update struct {
	Bio          *string      `json:"bio,omitempty"`
	Avatar       *venue.Media `json:"avatar,omitempty"`
	VenueManager *bool        `json:"venueManager,omitempty"`
}

// Credentials is returned by a successful login.
type Credentials struct {
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	AccessToken  string       `json:"accessToken"`
	VenueManager bool         `json:"venueManager"`
	Avatar       *venue.Media `json:"avatar,omitempty"`
}

// Registration is the body of POST /auth/register.
type Registration struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	VenueManager bool   `json:"venueManager"`
}

// Login is the body of POST /auth/login.
type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
