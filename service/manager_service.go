package services

import (
	"context"
	"fmt"

	"holidaze/api/holidaze"
	"holidaze/models"
	"holidaze/models/venue"
	"holidaze/session"
	"holidaze/util"
)

// ManagerService lets venue managers create, edit and delete their venues.
type ManagerService struct {
	holidazeApi  holidaze.HolidazeAPI
	venueService *VenueService
}

func NewManagerService(holidazeApi holidaze.HolidazeAPI, venueService *VenueService) *ManagerService {
	return &ManagerService{holidazeApi: holidazeApi, venueService: venueService}
}

func requireManager(sess *session.Session) error {
	if sess == nil {
		return models.ErrUnauthenticated
	}
	if !sess.VenueManager {
		return models.ErrForbidden
	}
	return nil
}

func (ms *ManagerService) CreateVenue(ctx context.Context, sess *session.Session, form models.VenueForm) (*venue.Venue, error) {
	if err := requireManager(sess); err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	v, err := ms.holidazeApi.CreateVenue(ctx, sess, form.ToInput())
	if err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}
	ms.venueService.InvalidateCatalog(ctx)
	util.GetLogger().Infof("[ManagerService] %s created venue %s", sess.UserName, v.ID)
	return v, nil
}

func (ms *ManagerService) UpdateVenue(ctx context.Context, sess *session.Session, venueID string, form models.VenueForm) (*venue.Venue, error) {
	if err := requireManager(sess); err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	v, err := ms.holidazeApi.UpdateVenue(ctx, sess, venueID, form.ToInput())
	if err != nil {
		return nil, fmt.Errorf("failed to update venue %s: %w", venueID, err)
	}
	ms.venueService.InvalidateCatalog(ctx)
	util.GetLogger().Infof("[ManagerService] %s updated venue %s", sess.UserName, venueID)
	return v, nil
}

func (ms *ManagerService) DeleteVenue(ctx context.Context, sess *session.Session, venueID string) error {
	if err := requireManager(sess); err != nil {
		return err
	}
	if err := ms.holidazeApi.DeleteVenue(ctx, sess, venueID); err != nil {
		return fmt.Errorf("failed to delete venue %s: %w", venueID, err)
	}
	ms.venueService.InvalidateCatalog(ctx)
	util.GetLogger().Infof("[ManagerService] %s deleted venue %s", sess.UserName, venueID)
	return nil
}
