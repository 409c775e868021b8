package search

import (
	"sort"

	"holidaze/models/venue"
)

// SortNewestFirst returns a copy of venues ordered by creation time, newest first.
// Venues created at the same instant keep their relative order.
func SortNewestFirst(venues []venue.Venue) []venue.Venue {
	out := make([]venue.Venue, len(venues))
	copy(out, venues)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Created.After(out[j].Created)
	})
	return out
}
