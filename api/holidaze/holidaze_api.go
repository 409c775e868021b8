package holidaze

import (
	"context"

	"holidaze/models"
	"holidaze/models/profile"
	"holidaze/models/venue"
	"holidaze/session"
)

// HolidazeAPI defines the interface for interacting with the Holidaze API.
// Calls that act on behalf of a user take the caller's session explicitly.
type HolidazeAPI interface {
	ListVenues(ctx context.Context, params models.ListVenuesParams) (*models.Envelope[[]venue.Venue], error)
	GetVenue(ctx context.Context, venueID string) (*venue.Venue, error)
	CreateBooking(ctx context.Context, sess *session.Session, booking venue.NewBooking) (*venue.Booking, error)

	Register(ctx context.Context, reg profile.Registration) (*profile.Profile, error)
	Login(ctx context.Context, login profile.Login) (*profile.Credentials, error)

	GetProfile(ctx context.Context, sess *session.Session, name string) (*profile.Profile, error)
	GetProfileVenues(ctx context.Context, sess *session.Session, name string) ([]venue.Venue, error)
	UpdateProfile(ctx context.Context, sess *session.Session, name string, update profile.Update) (*profile.Profile, error)

	CreateVenue(ctx context.Context, sess *session.Session, input venue.Input) (*venue.Venue, error)
	UpdateVenue(ctx context.Context, sess *session.Session, venueID string, input venue.Input) (*venue.Venue, error)
	DeleteVenue(ctx context.Context, sess *session.Session, venueID string) error
}
