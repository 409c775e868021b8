package services

import (
	"context"
	"time"

	"holidaze/util"
)

// VenuesRefresherService periodically refreshes the cached venue catalog.
type VenuesRefresherService struct {
	venueService *VenueService
}

// NewVenuesRefresherService constructs a new Refresher with dependencies.
func NewVenuesRefresherService(venueService *VenueService) *VenuesRefresherService {
	return &VenuesRefresherService{venueService: venueService}
}

// StartPeriodicJob launches the background loop at the given interval.
// The loop stops when ctx is cancelled.
func (vr *VenuesRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go vr.startPeriodicJob(ctx, interval)
}

func (vr *VenuesRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			util.GetLogger().Info("[VenuesRefresherService] Stopping periodic venues refresher job.")
			return
		case <-ticker.C:
			util.GetLogger().Debug("[VenuesRefresherService] Running periodic venues refresher job.")
			if _, err := vr.RefreshVenuesData(ctx); err != nil {
				util.GetLogger().Warnf("[VenuesRefresherService] RefreshVenuesData returned error: %v", err)
			}
		}
	}
}

// RefreshVenuesData re-fetches the catalog into the cache and returns its size.
func (vr *VenuesRefresherService) RefreshVenuesData(ctx context.Context) (int, error) {
	venues, err := vr.venueService.RefreshCatalog(ctx)
	if err != nil {
		return 0, err
	}
	util.GetLogger().Infof("[VenuesRefresherService] Cached %d venues.", len(venues))
	return len(venues), nil
}
