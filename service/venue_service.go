package services

import (
	"context"
	"fmt"
	"time"

	"holidaze/api/holidaze"
	"holidaze/dao/redis"
	"holidaze/models"
	"holidaze/models/venue"
	"holidaze/search"
	"holidaze/util"
)

const venuesPageLimit = 100

const loadFailedMessage = "Could not load venues. Please try again later."

// BrowseResult is the outcome of a browse request. Venues is never nil.
type BrowseResult struct {
	Status   LoadStatus            `json:"status"`
	Venues   []venue.Venue         `json:"venues"`
	Total    int                   `json:"total"`
	Criteria models.FilterCriteria `json:"-"`
	Message  string                `json:"message,omitempty"`
}

type VenueService struct {
	venueDao    *redis.RedisVenueDAO
	holidazeApi holidaze.HolidazeAPI
	cacheTTL    time.Duration
	maxPages    int
	now         func() time.Time
}

// NewVenueService constructs a new VenueService with Redis dependency injection.
func NewVenueService(
	venueDao *redis.RedisVenueDAO,
	holidazeApi holidaze.HolidazeAPI,
	cacheTTL time.Duration,
	maxPages int) *VenueService {

	if maxPages < 1 {
		maxPages = 1
	}
	return &VenueService{
		venueDao:    venueDao,
		holidazeApi: holidazeApi,
		cacheTTL:    cacheTTL,
		maxPages:    maxPages,
		now:         time.Now,
	}
}

// FetchCatalog pages through the live venue listing, newest first.
func (vs *VenueService) FetchCatalog(ctx context.Context) ([]venue.Venue, error) {
	var all []venue.Venue
	for page := 1; page <= vs.maxPages; page++ {
		resp, err := vs.holidazeApi.ListVenues(ctx, models.ListVenuesParams{
			Sort:      "created",
			SortOrder: "desc",
			Limit:     models.IntPtr(venuesPageLimit),
			Page:      models.IntPtr(page),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list venues page %d: %w", page, err)
		}
		all = append(all, resp.Data...)
		if resp.Meta.IsLastPage || len(resp.Data) == 0 {
			break
		}
	}
	return search.SortNewestFirst(all), nil
}

// RefreshCatalog fetches the live catalog and stores it as the snapshot.
func (vs *VenueService) RefreshCatalog(ctx context.Context) ([]venue.Venue, error) {
	venues, err := vs.FetchCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if err := vs.venueDao.SaveSnapshot(ctx, venues, vs.now(), vs.cacheTTL); err != nil {
		util.GetLogger().Warnf("[VenueService] Could not cache venues snapshot: %v", err)
	}
	return venues, nil
}

// Catalog returns the cached snapshot when present, else the live catalog.
func (vs *VenueService) Catalog(ctx context.Context) ([]venue.Venue, error) {
	snapshot, err := vs.venueDao.GetSnapshot(ctx)
	if err != nil {
		util.GetLogger().Warnf("[VenueService] Ignoring unreadable venues snapshot: %v", err)
	}
	if snapshot != nil {
		return snapshot.Venues, nil
	}
	return vs.RefreshCatalog(ctx)
}

// InvalidateCatalog forces the next Catalog call to go live.
func (vs *VenueService) InvalidateCatalog(ctx context.Context) {
	if err := vs.venueDao.InvalidateSnapshot(ctx); err != nil {
		util.GetLogger().Warnf("[VenueService] Could not invalidate venues snapshot: %v", err)
	}
}

// Browse loads the catalog and filters it by a free-text query and raw
// criteria as typed by the user.
func (vs *VenueService) Browse(ctx context.Context, query string, raw models.RawFilterInput) BrowseResult {
	criteria := search.ParseCriteria(raw)

	catalog, err := vs.Catalog(ctx)
	if err != nil {
		util.GetLogger().Errorf("[VenueService] Failed to load venues: %v", err)
		return BrowseResult{
			Status:   LoadStatusFailed,
			Venues:   []venue.Venue{},
			Criteria: criteria,
			Message:  loadFailedMessage,
		}
	}
	if len(catalog) == 0 {
		return BrowseResult{Status: LoadStatusEmpty, Venues: []venue.Venue{}, Criteria: criteria}
	}

	matches := search.Filter(catalog, query, criteria)
	return BrowseResult{
		Status:   LoadStatusLoaded,
		Venues:   matches,
		Total:    len(catalog),
		Criteria: criteria,
	}
}
