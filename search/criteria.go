package search

import (
	"math"
	"strconv"
	"strings"

	"holidaze/models"
)

// ParseCriteria turns raw form input into typed criteria.
// Input that does not parse as a usable number leaves that criterion unset.
func ParseCriteria(raw models.RawFilterInput) models.FilterCriteria {
	return models.FilterCriteria{
		Location: strings.TrimSpace(raw.Location),
		Rating:   parseFloat(raw.Rating),
		Guests:   parseInt(raw.Guests),
		Price:    parseFloat(raw.Price),
	}
}

func parseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return nil
	}
	return &f
}

func parseInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 {
		return nil
	}
	return &i
}
