package services

import (
	"context"
	"sync"
	"time"

	"holidaze/api/holidaze"
	"holidaze/dao/redis"
	"holidaze/db"
	"holidaze/models"
	"holidaze/models/profile"
	"holidaze/models/venue"
	"holidaze/session"
)

const testResources = "../resources"

// fakeAPI serves fixtures through the mock client and lets tests inject
// failures and paginated listings.
type fakeAPI struct {
	*holidaze.HolidazeApiClientMock

	mu          sync.Mutex
	pages       [][]venue.Venue
	listErr     error
	listCalls   int
	getVenueErr error
	bookErr     error
	booked      []venue.NewBooking
	creds       *profile.Credentials
	loginErr    error
	profile     *profile.Profile
	updates     []profile.Update
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{HolidazeApiClientMock: holidaze.NewHolidazeApiClientMock(testResources)}
}

func (f *fakeAPI) ListVenues(ctx context.Context, params models.ListVenuesParams) (*models.Envelope[[]venue.Venue], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.pages == nil {
		return f.HolidazeApiClientMock.ListVenues(ctx, params)
	}
	page := 1
	if params.Page != nil {
		page = *params.Page
	}
	env := &models.Envelope[[]venue.Venue]{Data: []venue.Venue{}}
	if page <= len(f.pages) {
		env.Data = f.pages[page-1]
	}
	env.Meta.CurrentPage = page
	env.Meta.IsLastPage = page >= len(f.pages)
	return env, nil
}

func (f *fakeAPI) GetVenue(ctx context.Context, venueID string) (*venue.Venue, error) {
	if f.getVenueErr != nil {
		return nil, f.getVenueErr
	}
	return f.HolidazeApiClientMock.GetVenue(ctx, venueID)
}

func (f *fakeAPI) CreateBooking(ctx context.Context, sess *session.Session, b venue.NewBooking) (*venue.Booking, error) {
	f.mu.Lock()
	f.booked = append(f.booked, b)
	f.mu.Unlock()
	if f.bookErr != nil {
		return nil, f.bookErr
	}
	return f.HolidazeApiClientMock.CreateBooking(ctx, sess, b)
}

func (f *fakeAPI) Login(ctx context.Context, login profile.Login) (*profile.Credentials, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	if f.creds != nil {
		return f.creds, nil
	}
	return f.HolidazeApiClientMock.Login(ctx, login)
}

func (f *fakeAPI) GetProfile(ctx context.Context, sess *session.Session, name string) (*profile.Profile, error) {
	if f.profile != nil {
		p := *f.profile
		return &p, nil
	}
	return f.HolidazeApiClientMock.GetProfile(ctx, sess, name)
}

func (f *fakeAPI) UpdateProfile(ctx context.Context, sess *session.Session, name string, update profile.Update) (*profile.Profile, error) {
	f.mu.Lock()
	f.updates = append(f.updates, update)
	f.mu.Unlock()
	return f.HolidazeApiClientMock.UpdateProfile(ctx, sess, name, update)
}

func newTestVenueService(api holidaze.HolidazeAPI) (*VenueService, *redis.RedisVenueDAO) {
	dao := redis.NewRedisVenueDAO(db.NewMockRedisClient())
	return NewVenueService(dao, api, 0, 5), dao
}

func newTestAuthService(api holidaze.HolidazeAPI) (*AuthService, *redis.RedisSessionDAO) {
	dao := redis.NewRedisSessionDAO(db.NewMockRedisClient())
	return NewAuthService(dao, api, time.Hour), dao
}
