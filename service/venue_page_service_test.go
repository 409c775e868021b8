package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holidaze/api"
	"holidaze/availability"
	"holidaze/models"
	"holidaze/models/venue"
	"holidaze/session"
)

const bergenCabinID = "a1f1c1d0-0002-4c1e-9d00-000000000002"

var guestSession = &session.Session{ID: "s-guest", Token: "tok", UserName: "ola_guest"}
var managerSession = &session.Session{ID: "s-manager", Token: "tok", UserName: "kari_manager", VenueManager: true}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func loadBergenCabin(t *testing.T, s *VenuePageService) *venue.Venue {
	t.Helper()
	page := s.LoadVenue(context.Background(), guestSession, bergenCabinID)
	require.Equal(t, LoadStatusLoaded, page.Status)
	return page.Venue
}

func TestLoadVenue(t *testing.T) {
	s := NewVenuePageService(newFakeAPI())

	page := s.LoadVenue(context.Background(), guestSession, bergenCabinID)

	assert.Equal(t, LoadStatusLoaded, page.Status)
	require.NotNil(t, page.Venue)
	assert.Len(t, page.Venue.Bookings, 1)
	assert.True(t, page.CanBook)
}

func TestLoadVenue_Failures(t *testing.T) {
	s := NewVenuePageService(newFakeAPI())

	page := s.LoadVenue(context.Background(), nil, "unknown")
	assert.Equal(t, LoadStatusFailed, page.Status)
	assert.True(t, errors.Is(page.Err, models.ErrNotFound))
	assert.True(t, errors.Is(page.Err, models.ErrLoadFailed))

	fake := newFakeAPI()
	fake.getVenueErr = &api.APIError{StatusCode: http.StatusBadGateway, Status: "502 Bad Gateway"}
	page = NewVenuePageService(fake).LoadVenue(context.Background(), nil, bergenCabinID)
	assert.Equal(t, LoadStatusFailed, page.Status)
	assert.Nil(t, page.Venue)
	assert.False(t, errors.Is(page.Err, models.ErrNotFound))
}

func TestCanBook(t *testing.T) {
	v := &venue.Venue{Owner: &venue.ProfileRef{Name: "kari_manager"}}

	assert.True(t, CanBook(guestSession, v))
	assert.False(t, CanBook(nil, v))
	assert.False(t, CanBook(managerSession, v))
	assert.False(t, CanBook(&session.Session{UserName: "kari_manager"}, v))
}

func TestCalendar(t *testing.T) {
	s := NewVenuePageService(newFakeAPI())
	v := loadBergenCabin(t, s)

	cells := s.Calendar(v, 2024, time.June)

	require.Len(t, cells, 30)
	assert.False(t, cells[8].Disabled)
	assert.True(t, cells[9].Disabled)
	assert.True(t, cells[14].Disabled)
	assert.False(t, cells[15].Disabled)
}

func TestQuote(t *testing.T) {
	s := NewVenuePageService(newFakeAPI())
	v := loadBergenCabin(t, s)

	sel := availability.NewSelection()
	sel.SelectRange(date("2024-06-16"), date("2024-06-18"))
	q := s.Quote(v, sel)
	assert.True(t, q.Valid)
	assert.Equal(t, 2, q.Nights)
	assert.Equal(t, 300.0, q.TotalPrice)

	sel.SelectRange(date("2024-06-12"), date("2024-06-13"))
	q = s.Quote(v, sel)
	assert.False(t, q.Valid)
	assert.Equal(t, "dates", q.Field)
	assert.Zero(t, q.TotalPrice)
}

func TestBook_Success(t *testing.T) {
	fake := newFakeAPI()
	s := NewVenuePageService(fake)
	v := loadBergenCabin(t, s)
	sel := availability.NewSelection()
	sel.OpenCalendar()
	sel.SelectRange(date("2024-06-16"), date("2024-06-18"))
	sel.Guests = 3

	result := s.Book(context.Background(), guestSession, v, sel)

	assert.Equal(t, BookingStatusBooked, result.Status)
	require.NotNil(t, result.Booking)
	assert.Nil(t, result.Selection.DateFrom)
	assert.Nil(t, result.Selection.DateTo)
	assert.False(t, result.Selection.CalendarOpen)
	require.Len(t, fake.booked, 1)
	assert.Equal(t, bergenCabinID, fake.booked[0].VenueID)
	assert.Equal(t, 3, fake.booked[0].Guests)
}

func TestBook_RejectedBeforeSubmission(t *testing.T) {
	fake := newFakeAPI()
	s := NewVenuePageService(fake)
	v := loadBergenCabin(t, s)

	tests := []struct {
		name   string
		from   string
		to     string
		guests int
	}{
		{"overlap", "2024-06-12", "2024-06-13", 1},
		{"checkout day", "2024-06-15", "2024-06-16", 1},
		{"too many guests", "2024-06-16", "2024-06-18", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := availability.NewSelection()
			sel.SelectRange(date(tt.from), date(tt.to))
			sel.Guests = tt.guests

			result := s.Book(context.Background(), guestSession, v, sel)

			assert.Equal(t, BookingStatusRejected, result.Status)
			assert.True(t, models.IsValidationError(result.Err))
			assert.NotEmpty(t, result.Message)
			assert.NotNil(t, result.Selection.DateFrom)
		})
	}
	assert.Empty(t, fake.booked)
}

func TestBook_NoDates(t *testing.T) {
	s := NewVenuePageService(newFakeAPI())
	v := loadBergenCabin(t, s)

	result := s.Book(context.Background(), guestSession, v, availability.NewSelection())

	assert.Equal(t, BookingStatusRejected, result.Status)
	assert.Equal(t, "Please select a valid date range.", result.Message)
}

func TestBook_RequiresGuestSession(t *testing.T) {
	s := NewVenuePageService(newFakeAPI())
	v := loadBergenCabin(t, s)
	sel := availability.NewSelection()
	sel.SelectRange(date("2024-06-16"), date("2024-06-18"))

	result := s.Book(context.Background(), nil, v, sel)
	assert.Equal(t, BookingStatusRejected, result.Status)
	assert.ErrorIs(t, result.Err, models.ErrUnauthenticated)

	result = s.Book(context.Background(), managerSession, v, sel)
	assert.Equal(t, BookingStatusRejected, result.Status)
	assert.ErrorIs(t, result.Err, models.ErrForbidden)
}

func TestBook_RemoteFailurePreservesSelection(t *testing.T) {
	fake := newFakeAPI()
	fake.bookErr = &api.APIError{StatusCode: http.StatusConflict, Status: "409 Conflict", Message: "Dates are no longer available"}
	s := NewVenuePageService(fake)
	v := loadBergenCabin(t, s)
	sel := availability.NewSelection()
	sel.OpenCalendar()
	sel.SelectRange(date("2024-06-16"), date("2024-06-18"))

	result := s.Book(context.Background(), guestSession, v, sel)

	assert.Equal(t, BookingStatusFailed, result.Status)
	assert.Equal(t, "Dates are no longer available", result.Message)
	assert.ErrorIs(t, result.Err, models.ErrBookingFailed)
	require.NotNil(t, result.Selection.DateFrom)
	assert.Equal(t, date("2024-06-16"), *result.Selection.DateFrom)
	assert.True(t, result.Selection.CalendarOpen)
}
