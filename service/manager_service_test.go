package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holidaze/models"
	"holidaze/models/venue"
)

func validVenueForm() models.VenueForm {
	return models.VenueForm{
		Name:        "Fjord House",
		Address:     "Fjordveien 2",
		City:        "Bergen",
		Country:     "Norway",
		Description: "House by the water",
		MaxGuests:   4,
		Price:       120,
		Media:       []string{" https://images.example.com/a.jpg ", "", "https://images.example.com/a.jpg"},
		Meta:        venue.Meta{Wifi: true},
	}
}

func TestCreateVenue(t *testing.T) {
	fake := newFakeAPI()
	vs, dao := newTestVenueService(fake)
	ms := NewManagerService(fake, vs)
	ctx := context.Background()
	require.NoError(t, dao.SaveSnapshot(ctx, []venue.Venue{{ID: "old"}}, time.Now(), 0))

	v, err := ms.CreateVenue(ctx, managerSession, validVenueForm())

	require.NoError(t, err)
	assert.Equal(t, "Fjord House", v.Name)
	require.Len(t, v.Media, 1)
	assert.Equal(t, "https://images.example.com/a.jpg", v.Media[0].URL)
	assert.True(t, v.Meta.Wifi)

	snapshot, err := dao.GetSnapshot(ctx)
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestCreateVenue_Rejections(t *testing.T) {
	fake := newFakeAPI()
	vs, _ := newTestVenueService(fake)
	ms := NewManagerService(fake, vs)
	ctx := context.Background()

	_, err := ms.CreateVenue(ctx, nil, validVenueForm())
	assert.ErrorIs(t, err, models.ErrUnauthenticated)

	_, err = ms.CreateVenue(ctx, guestSession, validVenueForm())
	assert.ErrorIs(t, err, models.ErrForbidden)

	tests := []struct {
		name    string
		mutate  func(f *models.VenueForm)
		message string
	}{
		{"no name", func(f *models.VenueForm) { f.Name = "" }, "Name is required"},
		{"zero guests", func(f *models.VenueForm) { f.MaxGuests = 0 }, "Max Guests is required"},
		{"bad media", func(f *models.VenueForm) { f.Media = []string{"images/a.jpg"} }, "Invalid URL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validVenueForm()
			tt.mutate(&form)

			_, err := ms.CreateVenue(ctx, managerSession, form)

			var ve *models.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.message, ve.Message)
		})
	}
}

func TestUpdateAndDeleteVenue(t *testing.T) {
	fake := newFakeAPI()
	vs, _ := newTestVenueService(fake)
	ms := NewManagerService(fake, vs)
	ctx := context.Background()

	v, err := ms.UpdateVenue(ctx, managerSession, "v9", validVenueForm())
	require.NoError(t, err)
	assert.Equal(t, "v9", v.ID)

	assert.NoError(t, ms.DeleteVenue(ctx, managerSession, "v9"))
	assert.ErrorIs(t, ms.DeleteVenue(ctx, guestSession, "v9"), models.ErrForbidden)
}
