package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holidaze/models"
	"holidaze/models/venue"
)

func names(venues []venue.Venue) []string {
	out := make([]string, 0, len(venues))
	for _, v := range venues {
		out = append(out, v.Name)
	}
	return out
}

func TestBrowse_LoadedNewestFirst(t *testing.T) {
	// Arrange
	vs, _ := newTestVenueService(newFakeAPI())

	// Act
	result := vs.Browse(context.Background(), "", models.RawFilterInput{})

	// Assert
	assert.Equal(t, LoadStatusLoaded, result.Status)
	assert.Equal(t, []string{"Seaside Villa", "Oslo Loft", "Bergen Cabin"}, names(result.Venues))
	assert.Equal(t, 3, result.Total)
}

func TestBrowse_Filters(t *testing.T) {
	vs, _ := newTestVenueService(newFakeAPI())
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		raw   models.RawFilterInput
		want  []string
	}{
		{"guests", "", models.RawFilterInput{Guests: "4"}, []string{"Seaside Villa", "Bergen Cabin"}},
		{"cabin query", "cabin", models.RawFilterInput{}, []string{"Seaside Villa", "Bergen Cabin"}},
		{"max price", "", models.RawFilterInput{Price: "150"}, []string{"Oslo Loft", "Bergen Cabin"}},
		{"min rating", "", models.RawFilterInput{Rating: "4"}, []string{"Oslo Loft"}},
		{"location", "", models.RawFilterInput{Location: "berg"}, []string{"Bergen Cabin"}},
		{"garbage numbers ignored", "", models.RawFilterInput{Price: "cheap", Guests: "many"}, []string{"Seaside Villa", "Oslo Loft", "Bergen Cabin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := vs.Browse(ctx, tt.query, tt.raw)
			assert.Equal(t, LoadStatusLoaded, result.Status)
			assert.Equal(t, tt.want, names(result.Venues))
		})
	}
}

func TestBrowse_NoMatchesIsStillLoaded(t *testing.T) {
	vs, _ := newTestVenueService(newFakeAPI())

	result := vs.Browse(context.Background(), "atlantis", models.RawFilterInput{})

	assert.Equal(t, LoadStatusLoaded, result.Status)
	assert.NotNil(t, result.Venues)
	assert.Empty(t, result.Venues)
}

func TestBrowse_LoadFailed(t *testing.T) {
	api := newFakeAPI()
	api.listErr = errors.New("connection refused")
	vs, _ := newTestVenueService(api)

	result := vs.Browse(context.Background(), "", models.RawFilterInput{})

	assert.Equal(t, LoadStatusFailed, result.Status)
	assert.NotNil(t, result.Venues)
	assert.Empty(t, result.Venues)
	assert.NotEmpty(t, result.Message)
}

func TestBrowse_EmptyCatalog(t *testing.T) {
	api := newFakeAPI()
	api.pages = [][]venue.Venue{{}}
	vs, _ := newTestVenueService(api)

	result := vs.Browse(context.Background(), "", models.RawFilterInput{})

	assert.Equal(t, LoadStatusEmpty, result.Status)
	assert.NotNil(t, result.Venues)
}

func TestCatalog_UsesSnapshot(t *testing.T) {
	api := newFakeAPI()
	vs, dao := newTestVenueService(api)
	ctx := context.Background()

	_, err := vs.Catalog(ctx)
	require.NoError(t, err)
	_, err = vs.Catalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, api.listCalls)

	snapshot, err := dao.GetSnapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Len(t, snapshot.Venues, 3)

	vs.InvalidateCatalog(ctx)
	_, err = vs.Catalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, api.listCalls)
}

func TestFetchCatalog_Paginates(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC) }
	api := newFakeAPI()
	api.pages = [][]venue.Venue{
		{{ID: "a", Created: day(3)}, {ID: "b", Created: day(1)}},
		{{ID: "c", Created: day(5)}},
		{{ID: "d", Created: day(2)}},
	}
	vs, _ := newTestVenueService(api)

	venues, err := vs.FetchCatalog(context.Background())

	require.NoError(t, err)
	ids := make([]string, 0, len(venues))
	for _, v := range venues {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"c", "a", "d", "b"}, ids)
	assert.Equal(t, 3, api.listCalls)
}

func TestFetchCatalog_StopsAtMaxPages(t *testing.T) {
	api := newFakeAPI()
	api.pages = [][]venue.Venue{{{ID: "a"}}, {{ID: "b"}}, {{ID: "c"}}}
	vs, _ := newTestVenueService(api)
	vs.maxPages = 2

	venues, err := vs.FetchCatalog(context.Background())

	require.NoError(t, err)
	assert.Len(t, venues, 2)
	assert.Equal(t, 2, api.listCalls)
}

func TestVenuesRefresherService_RefreshVenuesData(t *testing.T) {
	api := newFakeAPI()
	vs, dao := newTestVenueService(api)
	refresher := NewVenuesRefresherService(vs)
	ctx := context.Background()

	n, err := refresher.RefreshVenuesData(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	snapshot, err := dao.GetSnapshot(ctx)
	require.NoError(t, err)
	assert.NotNil(t, snapshot)

	api.listErr = errors.New("boom")
	_, err = refresher.RefreshVenuesData(ctx)
	assert.Error(t, err)
}

func TestVenuesRefresherService_PeriodicJob(t *testing.T) {
	api := newFakeAPI()
	vs, dao := newTestVenueService(api)
	refresher := NewVenuesRefresherService(vs)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	refresher.StartPeriodicJob(ctx, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		snapshot, err := dao.GetSnapshot(context.Background())
		return err == nil && snapshot != nil
	}, time.Second, 10*time.Millisecond)
}
