package holidaze

import (
	"context"
	"fmt"
	"time"

	"holidaze/config"
	"holidaze/models"
	"holidaze/models/profile"
	"holidaze/models/venue"
	"holidaze/session"
	"holidaze/util"
)

// HolidazeApiClientMock serves reads from JSON fixtures and answers writes
// with plausible records, so the BFF can run without network access.
type HolidazeApiClientMock struct {
	resourcesPath string
}

// NewHolidazeApiClientMock creates a mock reading fixtures from resourcesPath.
func NewHolidazeApiClientMock(resourcesPath string) *HolidazeApiClientMock {
	return &HolidazeApiClientMock{resourcesPath: resourcesPath}
}

func (c *HolidazeApiClientMock) path(resource string) string {
	return config.ResourcePath(c.resourcesPath, resource)
}

func requireSession(sess *session.Session) error {
	if sess == nil || sess.Token == "" {
		return models.ErrUnauthenticated
	}
	return nil
}

func (c *HolidazeApiClientMock) ListVenues(ctx context.Context, params models.ListVenuesParams) (*models.Envelope[[]venue.Venue], error) {
	page, err := util.ReadVenuesPageFromJSON(c.path(config.VENUES_PAGE_RESOURCE))
	if err != nil {
		util.GetLogger().Warnf("[HolidazeApiClientMock] Could not read venues page fixture: %v", err)
		return nil, err
	}
	return page, nil
}

// GetVenue returns the venue fixture, or ErrNotFound when venueID names
// neither the fixture nor any venue of the listing fixture.
func (c *HolidazeApiClientMock) GetVenue(ctx context.Context, venueID string) (*venue.Venue, error) {
	v, err := util.ReadVenueFromJSON(c.path(config.VENUE_RESOURCE))
	if err != nil {
		util.GetLogger().Warnf("[HolidazeApiClientMock] Could not read venue fixture: %v", err)
		return nil, err
	}
	if v.ID == venueID {
		return v, nil
	}

	page, err := c.ListVenues(ctx, models.ListVenuesParams{})
	if err != nil {
		return nil, err
	}
	for i := range page.Data {
		if page.Data[i].ID == venueID {
			return &page.Data[i], nil
		}
	}
	return nil, fmt.Errorf("venue %q: %w", venueID, models.ErrNotFound)
}

func (c *HolidazeApiClientMock) CreateBooking(ctx context.Context, sess *session.Session, booking venue.NewBooking) (*venue.Booking, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &venue.Booking{
		ID:       "mock-booking-" + booking.VenueID,
		DateFrom: booking.DateFrom,
		DateTo:   booking.DateTo,
		Guests:   booking.Guests,
		Created:  now,
		Updated:  now,
	}, nil
}

func (c *HolidazeApiClientMock) Register(ctx context.Context, reg profile.Registration) (*profile.Profile, error) {
	return &profile.Profile{
		Name:         reg.Name,
		Email:        reg.Email,
		VenueManager: reg.VenueManager,
	}, nil
}

func (c *HolidazeApiClientMock) Login(ctx context.Context, login profile.Login) (*profile.Credentials, error) {
	creds, err := util.ReadCredentialsFromJSON(c.path(config.LOGIN_RESPONSE_RESOURCE))
	if err != nil {
		return nil, err
	}
	if login.Email != "" {
		creds.Email = login.Email
	}
	return creds, nil
}

func (c *HolidazeApiClientMock) GetProfile(ctx context.Context, sess *session.Session, name string) (*profile.Profile, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	p, err := util.ReadProfileFromJSON(c.path(config.PROFILE_RESOURCE))
	if err != nil {
		return nil, err
	}
	p.Name = name
	return p, nil
}

func (c *HolidazeApiClientMock) GetProfileVenues(ctx context.Context, sess *session.Session, name string) ([]venue.Venue, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	page, err := util.ReadVenuesPageFromJSON(c.path(config.PROFILE_VENUES_RESOURCE))
	if err != nil {
		return nil, err
	}
	return page.Data, nil
}

func (c *HolidazeApiClientMock) UpdateProfile(ctx context.Context, sess *session.Session, name string, update profile.Update) (*profile.Profile, error) {
	p, err := c.GetProfile(ctx, sess, name)
	if err != nil {
		return nil, err
	}
	if update.Bio != nil {
		p.Bio = *update.Bio
	}
	if update.Avatar != nil {
		p.Avatar = update.Avatar
	}
	if update.VenueManager != nil {
		p.VenueManager = *update.VenueManager
	}
	return p, nil
}

func (c *HolidazeApiClientMock) CreateVenue(ctx context.Context, sess *session.Session, input venue.Input) (*venue.Venue, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	return inputToVenue("mock-venue", input, sess.UserName), nil
}

func (c *HolidazeApiClientMock) UpdateVenue(ctx context.Context, sess *session.Session, venueID string, input venue.Input) (*venue.Venue, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	return inputToVenue(venueID, input, sess.UserName), nil
}

func (c *HolidazeApiClientMock) DeleteVenue(ctx context.Context, sess *session.Session, venueID string) error {
	return requireSession(sess)
}

func inputToVenue(id string, in venue.Input, owner string) *venue.Venue {
	now := time.Now().UTC()
	return &venue.Venue{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Media:       in.Media,
		Price:       in.Price,
		MaxGuests:   in.MaxGuests,
		Meta:        in.Meta,
		Location: venue.Location{
			Address: in.Location.Address,
			City:    in.Location.City,
			Country: in.Location.Country,
		},
		Created: now,
		Updated: now,
		Owner:   &venue.ProfileRef{Name: owner},
	}
}
