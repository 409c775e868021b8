package venue

import "time"

// Venue represents a rental listing as returned by the Holidaze API.
type Venue struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Media       []Media  `json:"media"`
	Price       float64  `json:"price"`
	MaxGuests   int      `json:"maxGuests"`
	Rating      float64  `json:"rating,omitempty"` // absent means unrated (0)
	Meta        Meta     `json:"meta"`
	Location    Location `json:"location"`

	Created time.Time `json:"created,omitempty"`
	Updated time.Time `json:"updated,omitempty"`

	// Only present when the request asks for _owner / _bookings expansion.
	Owner    *ProfileRef `json:"owner,omitempty"`
	Bookings []Booking   `json:"bookings,omitempty"`
}

// Location is the address block of a venue. Every field may be empty.
type Location struct {
	Address   string  `json:"address,omitempty"`
	City      string  `json:"city,omitempty"`
	Zip       string  `json:"zip,omitempty"`
	Country   string  `json:"country,omitempty"`
	Continent string  `json:"continent,omitempty"`
	Lat       float64 `json:"lat,omitempty"`
	Lng       float64 `json:"lng,omitempty"`
}

// Media is one image attached to a venue or profile.
type Media struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// Meta holds the amenity flags of a venue.
type Meta struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

// ProfileRef is the short profile form embedded in venues and bookings.
type ProfileRef struct {
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Bio    string `json:"bio,omitempty"`
	Avatar *Media `json:"avatar,omitempty"`
}
