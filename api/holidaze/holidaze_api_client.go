package holidaze

import (
	"context"
	"net/http"
	"net/url"

	"holidaze/api"
	"holidaze/models"
	"holidaze/models/profile"
	"holidaze/models/venue"
	"holidaze/session"
)

const (
	venuesEndpoint   = "/holidaze/venues"
	bookingsEndpoint = "/holidaze/bookings"
	profilesEndpoint = "/holidaze/profiles"
	registerEndpoint = "/auth/register"
	loginEndpoint    = "/auth/login"
)

// HolidazeApiClient embeds the common HTTPClient
type HolidazeApiClient struct {
	*api.HTTPClient
}

// NewHolidazeApiClient creates a new instance of HolidazeApiClient
func NewHolidazeApiClient(httpClient *api.HTTPClient) *HolidazeApiClient {
	return &HolidazeApiClient{
		HTTPClient: httpClient,
	}
}

func withQuery(endpoint string, q url.Values) string {
	if len(q) == 0 {
		return endpoint
	}
	return endpoint + "?" + q.Encode()
}

func authHeaders(sess *session.Session) (map[string]string, error) {
	if sess == nil || sess.Token == "" {
		return nil, models.ErrUnauthenticated
	}
	return api.BearerHeaders(sess.Token), nil
}

// ListVenues retrieves one page of the public venue listing.
func (c *HolidazeApiClient) ListVenues(ctx context.Context, params models.ListVenuesParams) (*models.Envelope[[]venue.Venue], error) {
	var response models.Envelope[[]venue.Venue]
	err := c.Request(ctx, http.MethodGet, withQuery(venuesEndpoint, params.ToValues()), nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetVenue retrieves a venue with its owner and bookings expanded.
func (c *HolidazeApiClient) GetVenue(ctx context.Context, venueID string) (*venue.Venue, error) {
	var response models.Envelope[venue.Venue]
	q := models.ExpandParams{Owner: true, Bookings: true}.ToValues()
	err := c.Request(ctx, http.MethodGet, withQuery(venuesEndpoint+"/"+url.PathEscape(venueID), q), nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response.Data, nil
}

func (c *HolidazeApiClient) CreateBooking(ctx context.Context, sess *session.Session, booking venue.NewBooking) (*venue.Booking, error) {
	headers, err := authHeaders(sess)
	if err != nil {
		return nil, err
	}
	var response models.Envelope[venue.Booking]
	if err := c.Request(ctx, http.MethodPost, bookingsEndpoint, headers, booking, &response); err != nil {
		return nil, err
	}
	return &response.Data, nil
}

func (c *HolidazeApiClient) Register(ctx context.Context, reg profile.Registration) (*profile.Profile, error) {
	var response models.Envelope[profile.Profile]
	if err := c.Request(ctx, http.MethodPost, registerEndpoint, nil, reg, &response); err != nil {
		return nil, err
	}
	return &response.Data, nil
}

// Login exchanges credentials for an access token.
func (c *HolidazeApiClient) Login(ctx context.Context, login profile.Login) (*profile.Credentials, error) {
	var response models.Envelope[profile.Credentials]
	if err := c.Request(ctx, http.MethodPost, loginEndpoint, nil, login, &response); err != nil {
		return nil, err
	}
	return &response.Data, nil
}

// GetProfile retrieves a profile with its venues and bookings expanded.
func (c *HolidazeApiClient) GetProfile(ctx context.Context, sess *session.Session, name string) (*profile.Profile, error) {
	headers, err := authHeaders(sess)
	if err != nil {
		return nil, err
	}
	var response models.Envelope[profile.Profile]
	q := models.ExpandParams{Venues: true, Bookings: true}.ToValues()
	err = c.Request(ctx, http.MethodGet, withQuery(profilesEndpoint+"/"+url.PathEscape(name), q), headers, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response.Data, nil
}

// GetProfileVenues retrieves the venues a manager owns, with bookings expanded.
func (c *HolidazeApiClient) GetProfileVenues(ctx context.Context, sess *session.Session, name string) ([]venue.Venue, error) {
	headers, err := authHeaders(sess)
	if err != nil {
		return nil, err
	}
	var response models.Envelope[[]venue.Venue]
	q := models.ExpandParams{Bookings: true}.ToValues()
	err = c.Request(ctx, http.MethodGet, withQuery(profilesEndpoint+"/"+url.PathEscape(name)+"/venues", q), headers, nil, &response)
	if err != nil {
		return nil, err
	}
	return response.Data, nil
}

func (c *HolidazeApiClient) UpdateProfile(ctx context.Context, sess *session.Session, name string, update profile.Update) (*profile.Profile, error) {
	headers, err := authHeaders(sess)
	if err != nil {
		return nil, err
	}
	var response models.Envelope[profile.Profile]
	if err := c.Request(ctx, http.MethodPut, profilesEndpoint+"/"+url.PathEscape(name), headers, update, &response); err != nil {
		return nil, err
	}
	return &response.Data, nil
}

func (c *HolidazeApiClient) CreateVenue(ctx context.Context, sess *session.Session, input venue.Input) (*venue.Venue, error) {
	headers, err := authHeaders(sess)
	if err != nil {
		return nil, err
	}
	var response models.Envelope[venue.Venue]
	if err := c.Request(ctx, http.MethodPost, venuesEndpoint, headers, input, &response); err != nil {
		return nil, err
	}
	return &response.Data, nil
}

func (c *HolidazeApiClient) UpdateVenue(ctx context.Context, sess *session.Session, venueID string, input venue.Input) (*venue.Venue, error) {
	headers, err := authHeaders(sess)
	if err != nil {
		return nil, err
	}
	var response models.Envelope[venue.Venue]
	if err := c.Request(ctx, http.MethodPut, venuesEndpoint+"/"+url.PathEscape(venueID), headers, input, &response); err != nil {
		return nil, err
	}
	return &response.Data, nil
}

// DeleteVenue removes a venue. The API answers 204 with no body.
func (c *HolidazeApiClient) DeleteVenue(ctx context.Context, sess *session.Session, venueID string) error {
	headers, err := authHeaders(sess)
	if err != nil {
		return err
	}
	return c.Request(ctx, http.MethodDelete, venuesEndpoint+"/"+url.PathEscape(venueID), headers, nil, nil)
}
