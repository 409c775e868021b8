// Package search filters an in-memory venue list by free text and typed criteria.
package search

import (
	"strings"

	"holidaze/models"
	"holidaze/models/venue"
)

// Filter returns the venues matching query and every set criterion, in input order.
// The input slice is never modified; the result is always a new slice.
func Filter(venues []venue.Venue, query string, criteria models.FilterCriteria) []venue.Venue {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" && criteria.IsEmpty() {
		return append(make([]venue.Venue, 0, len(venues)), venues...)
	}
	location := strings.ToLower(criteria.Location)

	out := make([]venue.Venue, 0, len(venues))
	for _, v := range venues {
		if Matches(&v, q, location, criteria) {
			out = append(out, v)
		}
	}
	return out
}

// Matches applies all predicates to one venue. q and location must already be lowercased.
func Matches(v *venue.Venue, q, location string, criteria models.FilterCriteria) bool {
	return matchesQuery(v, q) &&
		matchesLocation(v, location) &&
		matchesRating(v, criteria.Rating) &&
		matchesGuests(v, criteria.Guests) &&
		matchesPrice(v, criteria.Price)
}

// matchesQuery checks name, city and country.
func matchesQuery(v *venue.Venue, q string) bool {
	if q == "" {
		return true
	}
	return containsFold(v.Name, q) ||
		containsFold(v.Location.City, q) ||
		containsFold(v.Location.Country, q)
}

func matchesLocation(v *venue.Venue, location string) bool {
	return location == "" || containsFold(v.Location.City, location)
}

// Unrated venues carry Rating 0.
func matchesRating(v *venue.Venue, min *float64) bool {
	return min == nil || v.Rating >= *min
}

func matchesGuests(v *venue.Venue, min *int) bool {
	return min == nil || v.MaxGuests >= *min
}

func matchesPrice(v *venue.Venue, max *float64) bool {
	return max == nil || v.Price <= *max
}

// containsFold reports whether lowered needle is a substring of field. Empty fields never match.
func containsFold(field, needle string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), needle)
}
