package util

import (
	"encoding/json"
	"fmt"
	"os"

	"holidaze/models"
	"holidaze/models/profile"
	"holidaze/models/venue"
)

func readJSON(filePath string, target interface{}, kind string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", kind, err)
	}
	return nil
}

// ReadVenuesPageFromJSON loads one page of the venue listing as returned by the API.
func ReadVenuesPageFromJSON(filePath string) (*models.Envelope[[]venue.Venue], error) {
	var resp models.Envelope[[]venue.Venue]
	if err := readJSON(filePath, &resp, "venues page"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReadVenueFromJSON loads a single venue envelope from JSON on disk.
func ReadVenueFromJSON(filePath string) (*venue.Venue, error) {
	var resp models.Envelope[venue.Venue]
	if err := readJSON(filePath, &resp, "venue"); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// ReadProfileFromJSON loads a single profile envelope from JSON on disk.
func ReadProfileFromJSON(filePath string) (*profile.Profile, error) {
	var resp models.Envelope[profile.Profile]
	if err := readJSON(filePath, &resp, "profile"); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// ReadCredentialsFromJSON loads a login response envelope from JSON on disk.
func ReadCredentialsFromJSON(filePath string) (*profile.Credentials, error) {
	var resp models.Envelope[profile.Credentials]
	if err := readJSON(filePath, &resp, "credentials"); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
