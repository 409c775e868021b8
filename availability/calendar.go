// Package availability decides which calendar days of a venue can be booked
// and what a stay costs.
package availability

import (
	"math"
	"time"

	"holidaze/models/venue"
)

const DateLayout = "2006-01-02"

const hoursPerDay = 24

// Day truncates t to its calendar day, expressed as midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD or RFC3339 string into a calendar day.
func ParseDay(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// IsDisabled reports whether date falls inside the closed interval [DateFrom, DateTo]
// of at least one booking. Both endpoints count as booked, so the checkout day
// of an existing booking cannot start a new one.
func IsDisabled(date time.Time, bookings []venue.Booking) bool {
	d := Day(date)
	for _, b := range bookings {
		if !d.Before(Day(b.DateFrom)) && !d.After(Day(b.DateTo)) {
			return true
		}
	}
	return false
}

// Cell is one day of a month view.
type Cell struct {
	Date     string `json:"date"`
	Disabled bool   `json:"disabled"`
}

// Month returns one cell per day of the given month.
func Month(year int, month time.Month, bookings []venue.Booking) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	cells := make([]Cell, 0, 31)
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		cells = append(cells, Cell{
			Date:     d.Format(DateLayout),
			Disabled: IsDisabled(d, bookings),
		})
	}
	return cells
}

// Nights is the number of nights between two calendar days, rounded up.
func Nights(from, to time.Time) int {
	return int(math.Ceil(Day(to).Sub(Day(from)).Hours() / hoursPerDay))
}

// TotalPrice returns nights * nightlyPrice. It is 0 when either date is unset,
// the price is unset or not a positive number, or the range is reversed.
func TotalPrice(from, to *time.Time, nightlyPrice float64) float64 {
	if from == nil || to == nil || from.IsZero() || to.IsZero() {
		return 0
	}
	if math.IsNaN(nightlyPrice) || math.IsInf(nightlyPrice, 0) || nightlyPrice <= 0 {
		return 0
	}
	nights := Nights(*from, *to)
	if nights <= 0 {
		return 0
	}
	return float64(nights) * nightlyPrice
}

// StayDuration is the absolute length of a booking in days, rounded up.
func StayDuration(b venue.Booking) int {
	diff := b.DateTo.Sub(b.DateFrom)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / hoursPerDay))
}

// CountUpcoming counts bookings starting strictly after now.
func CountUpcoming(bookings []venue.Booking, now time.Time) int {
	n := 0
	for _, b := range bookings {
		if b.DateFrom.After(now) {
			n++
		}
	}
	return n
}
