package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"holidaze/api/holidaze"
	"holidaze/availability"
	"holidaze/models"
	"holidaze/models/venue"
	"holidaze/session"
	"holidaze/util"
)

const (
	venueLoadFailedMessage = "Could not load this venue. Please try again later."
	bookingFailedMessage   = "Booking failed. Please try again."
	bookedMessage          = "Booking confirmed!"
	loginToBookMessage     = "Please log in to book this venue."
	managerBookingMessage  = "Venue managers cannot book venues."
)

// VenuePage is the outcome of loading a single venue.
type VenuePage struct {
	Status  LoadStatus   `json:"status"`
	Venue   *venue.Venue `json:"venue,omitempty"`
	CanBook bool         `json:"canBook"`
	Message string       `json:"message,omitempty"`
	Err     error        `json:"-"`
}

// Quote prices a selection without submitting it.
type Quote struct {
	Valid      bool    `json:"valid"`
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"totalPrice"`
	Message    string  `json:"message,omitempty"`
	Field      string  `json:"field,omitempty"`
}

// BookingResult is the outcome of a booking attempt. Selection is the state
// the user should see afterwards.
type BookingResult struct {
	Status    BookingStatus           `json:"status"`
	Message   string                  `json:"message"`
	Booking   *venue.Booking          `json:"booking,omitempty"`
	Selection *availability.Selection `json:"selection"`
	Err       error                   `json:"-"`
}

// VenuePageService backs the single venue page: details, calendar and booking.
type VenuePageService struct {
	holidazeApi holidaze.HolidazeAPI
}

func NewVenuePageService(holidazeApi holidaze.HolidazeAPI) *VenuePageService {
	return &VenuePageService{holidazeApi: holidazeApi}
}

// LoadVenue fetches a venue with its owner and bookings.
func (s *VenuePageService) LoadVenue(ctx context.Context, sess *session.Session, venueID string) VenuePage {
	v, err := s.holidazeApi.GetVenue(ctx, venueID)
	if err != nil {
		util.GetLogger().Errorf("[VenuePageService] Failed to load venue %s: %v", venueID, err)
		return VenuePage{
			Status:  LoadStatusFailed,
			Message: venueLoadFailedMessage,
			Err:     fmt.Errorf("%w: %w", models.ErrLoadFailed, err),
		}
	}
	return VenuePage{
		Status:  LoadStatusLoaded,
		Venue:   v,
		CanBook: CanBook(sess, v),
	}
}

// CanBook reports whether the session user may be offered booking for v.
// Guests can book; venue managers and anonymous visitors cannot.
func CanBook(sess *session.Session, v *venue.Venue) bool {
	if sess == nil || sess.VenueManager {
		return false
	}
	return v.Owner == nil || v.Owner.Name != sess.UserName
}

// Calendar returns the day cells of one month with booked days disabled.
func (s *VenuePageService) Calendar(v *venue.Venue, year int, month time.Month) []availability.Cell {
	return availability.Month(year, month, v.Bookings)
}

// Quote validates and prices a selection without any I/O.
func (s *VenuePageService) Quote(v *venue.Venue, sel *availability.Selection) Quote {
	if err := sel.Validate(v); err != nil {
		q := Quote{Message: err.Error()}
		var ve *models.ValidationError
		if errors.As(err, &ve) {
			q.Message, q.Field = ve.Message, ve.Field
		}
		return q
	}
	return Quote{
		Valid:      true,
		Nights:     availability.Nights(*sel.DateFrom, *sel.DateTo),
		TotalPrice: sel.TotalPrice(v),
	}
}

// Book submits a validated selection. An invalid selection is rejected
// before any request is sent. On a remote failure the selection is kept
// so the user can retry; on success it is cleared and the calendar closed.
func (s *VenuePageService) Book(ctx context.Context, sess *session.Session, v *venue.Venue, sel *availability.Selection) BookingResult {
	if sess == nil {
		return BookingResult{
			Status:    BookingStatusRejected,
			Message:   loginToBookMessage,
			Selection: sel,
			Err:       models.ErrUnauthenticated,
		}
	}
	if !CanBook(sess, v) {
		return BookingResult{
			Status:    BookingStatusRejected,
			Message:   managerBookingMessage,
			Selection: sel,
			Err:       models.ErrForbidden,
		}
	}
	if err := sel.Validate(v); err != nil {
		msg := err.Error()
		var ve *models.ValidationError
		if errors.As(err, &ve) {
			msg = ve.Message
		}
		return BookingResult{
			Status:    BookingStatusRejected,
			Message:   msg,
			Selection: sel,
			Err:       err,
		}
	}

	booking, err := s.holidazeApi.CreateBooking(ctx, sess, sel.ToNewBooking(v.ID))
	if err != nil {
		util.GetLogger().Errorf("[VenuePageService] Booking venue %s for %s failed: %v", v.ID, sess.UserName, err)
		return BookingResult{
			Status:    BookingStatusFailed,
			Message:   remoteMessage(err, bookingFailedMessage),
			Selection: sel,
			Err:       fmt.Errorf("%w: %w", models.ErrBookingFailed, err),
		}
	}

	util.GetLogger().Infof("[VenuePageService] %s booked venue %s", sess.UserName, v.ID)
	sel.Clear()
	sel.CloseCalendar()
	return BookingResult{
		Status:    BookingStatusBooked,
		Message:   bookedMessage,
		Booking:   booking,
		Selection: sel,
	}
}
