package services

import (
	"errors"

	"holidaze/api"
)

// LoadStatus tells the presentation layer how a fetch ended. A load failure
// is never reported as an empty result.
type LoadStatus string

const (
	LoadStatusLoaded LoadStatus = "loaded"
	LoadStatusEmpty  LoadStatus = "empty"
	LoadStatusFailed LoadStatus = "load_failed"
)

// BookingStatus tells the presentation layer how a booking attempt ended.
type BookingStatus string

const (
	BookingStatusBooked   BookingStatus = "booked"
	BookingStatusRejected BookingStatus = "rejected"
	BookingStatusFailed   BookingStatus = "booking_failed"
)

// remoteMessage returns the remote API's own message when err carries one.
func remoteMessage(err error, fallback string) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
