package models

import (
	"net/url"
	"strconv"
)

// FilterCriteria is the typed, already-parsed form of the browse filters.
// A nil pointer or empty string means the criterion is unset.
type FilterCriteria struct {
	Location string   // city substring
	Rating   *float64 // minimum rating, inclusive
	Guests   *int     // minimum maxGuests
	Price    *float64 // maximum nightly price, inclusive
}

// IsEmpty reports whether no criterion is set.
func (c FilterCriteria) IsEmpty() bool {
	return c.Location == "" && c.Rating == nil && c.Guests == nil && c.Price == nil
}

// RawFilterInput holds the criteria exactly as typed by the user.
type RawFilterInput struct {
	Location string `json:"location"`
	Rating   string `json:"rating"`
	Guests   string `json:"guests"`
	Price    string `json:"price"`
}

// ListVenuesParams mirrors the API's list query args. Use zero-values to omit.
type ListVenuesParams struct {
	Sort         string // e.g. "created"
	SortOrder    string // "asc" | "desc"
	Limit        *int   // API default 100
	Page         *int   // 1-based
	WithOwner    *bool
	WithBookings *bool
}

func (p ListVenuesParams) ToValues() url.Values {
	q := url.Values{}

	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	if p.SortOrder != "" {
		q.Set("sortOrder", p.SortOrder)
	}
	if p.Limit != nil {
		q.Set("limit", itoa(*p.Limit))
	}
	if p.Page != nil {
		q.Set("page", itoa(*p.Page))
	}
	if p.WithOwner != nil {
		q.Set("_owner", btoa(*p.WithOwner))
	}
	if p.WithBookings != nil {
		q.Set("_bookings", btoa(*p.WithBookings))
	}

	return q
}

// ExpandParams selects which relations a single-resource request expands.
type ExpandParams struct {
	Owner    bool
	Bookings bool
	Venues   bool
	Venue    bool
	Customer bool
}

func (p ExpandParams) ToValues() url.Values {
	q := url.Values{}
	if p.Owner {
		q.Set("_owner", "true")
	}
	if p.Bookings {
		q.Set("_bookings", "true")
	}
	if p.Venues {
		q.Set("_venues", "true")
	}
	if p.Venue {
		q.Set("_venue", "true")
	}
	if p.Customer {
		q.Set("_customer", "true")
	}
	return q
}

func itoa(i int) string { return strconv.Itoa(i) }
func btoa(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// IntPtr helps build params inline.
func IntPtr(i int) *int { return &i }
