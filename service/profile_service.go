package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"holidaze/api/holidaze"
	"holidaze/availability"
	"holidaze/models"
	"holidaze/models/profile"
	"holidaze/models/venue"
	"holidaze/session"
	"holidaze/util"
)

const (
	DefaultAvatarURL = "https://cdn.pixabay.com/photo/2015/10/05/22/37/blank-profile-picture-973460_1280.png"
	avatarAlt        = "User avatar"
)

// ManagedVenue is a venue owned by a manager with its upcoming booking count.
type ManagedVenue struct {
	venue.Venue
	UpcomingBookings int `json:"upcomingBookings"`
}

// GuestBooking is one of a guest's bookings with its length in days.
type GuestBooking struct {
	venue.Booking
	StayDays int `json:"stayDays"`
}

// ProfileView is everything the profile page shows.
type ProfileView struct {
	Profile       *profile.Profile `json:"profile"`
	IsOwnProfile  bool             `json:"isOwnProfile"`
	ManagedVenues []ManagedVenue   `json:"managedVenues,omitempty"`
	Bookings      []GuestBooking   `json:"bookings,omitempty"`
}

type ProfileService struct {
	holidazeApi holidaze.HolidazeAPI
	authService *AuthService
	now         func() time.Time
}

func NewProfileService(holidazeApi holidaze.HolidazeAPI, authService *AuthService) *ProfileService {
	return &ProfileService{
		holidazeApi: holidazeApi,
		authService: authService,
		now:         time.Now,
	}
}

// View loads a profile. Managers get their venues annotated with upcoming
// bookings; guests get their bookings annotated with stay length.
func (ps *ProfileService) View(ctx context.Context, sess *session.Session, name string) (*ProfileView, error) {
	if sess == nil {
		return nil, models.ErrUnauthenticated
	}
	p, err := ps.holidazeApi.GetProfile(ctx, sess, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %s: %w", name, err)
	}

	view := &ProfileView{Profile: p, IsOwnProfile: sess.IsOwner(p.Name)}
	if p.VenueManager {
		venues, err := ps.holidazeApi.GetProfileVenues(ctx, sess, name)
		if err != nil {
			return nil, fmt.Errorf("failed to load venues of %s: %w", name, err)
		}
		view.ManagedVenues = AnnotateManagedVenues(venues, ps.now())
	} else {
		view.Bookings = AnnotateGuestBookings(p.Bookings)
	}
	return view, nil
}

// AnnotateManagedVenues counts, per venue, the bookings starting after now.
func AnnotateManagedVenues(venues []venue.Venue, now time.Time) []ManagedVenue {
	out := make([]ManagedVenue, 0, len(venues))
	for _, v := range venues {
		out = append(out, ManagedVenue{
			Venue:            v,
			UpcomingBookings: availability.CountUpcoming(v.Bookings, now),
		})
	}
	return out
}

// AnnotateGuestBookings adds the stay length to each booking.
func AnnotateGuestBookings(bookings []venue.Booking) []GuestBooking {
	out := make([]GuestBooking, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, GuestBooking{Booking: b, StayDays: availability.StayDuration(b)})
	}
	return out
}

func (ps *ProfileService) requireOwner(sess *session.Session, name string) error {
	if sess == nil {
		return models.ErrUnauthenticated
	}
	if !sess.IsOwner(name) {
		return models.ErrForbidden
	}
	return nil
}

// UpdateProfile changes bio and avatar. Blank fields keep their current value.
func (ps *ProfileService) UpdateProfile(ctx context.Context, sess *session.Session, name string, form models.ProfileForm) (*profile.Profile, error) {
	if err := ps.requireOwner(sess, name); err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	current, err := ps.holidazeApi.GetProfile(ctx, sess, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %s: %w", name, err)
	}

	bio := strings.TrimSpace(form.Bio)
	if bio == "" {
		bio = current.Bio
	}
	avatarURL := strings.TrimSpace(form.AvatarURL)
	if avatarURL == "" && current.Avatar != nil {
		avatarURL = current.Avatar.URL
	}

	update := profile.Update{Bio: &bio}
	if avatarURL != "" {
		update.Avatar = &venue.Media{URL: avatarURL, Alt: avatarAlt}
	}
	updated, err := ps.holidazeApi.UpdateProfile(ctx, sess, name, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile %s: %w", name, err)
	}
	util.GetLogger().Infof("[ProfileService] Updated profile of %s", name)
	return updated, nil
}

// SetVenueManager turns venue manager status on or off. The avatar is sent
// along, falling back to a placeholder when the profile has none.
func (ps *ProfileService) SetVenueManager(ctx context.Context, sess *session.Session, name string, manager bool) (*profile.Profile, error) {
	if err := ps.requireOwner(sess, name); err != nil {
		return nil, err
	}
	current, err := ps.holidazeApi.GetProfile(ctx, sess, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %s: %w", name, err)
	}

	avatarURL := DefaultAvatarURL
	if current.Avatar != nil && current.Avatar.URL != "" {
		avatarURL = current.Avatar.URL
	}
	updated, err := ps.holidazeApi.UpdateProfile(ctx, sess, name, profile.Update{
		VenueManager: &manager,
		Avatar:       &venue.Media{URL: avatarURL, Alt: avatarAlt},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update venue manager status of %s: %w", name, err)
	}

	sess.VenueManager = updated.VenueManager
	if err := ps.authService.Refresh(ctx, sess); err != nil {
		util.GetLogger().Warnf("[ProfileService] Could not refresh session of %s: %v", name, err)
	}
	util.GetLogger().Infof("[ProfileService] %s venue manager status set to %t", name, updated.VenueManager)
	return updated, nil
}

// RenderBookingsChart writes an HTML chart of upcoming bookings per venue
// managed by name.
func (ps *ProfileService) RenderBookingsChart(ctx context.Context, sess *session.Session, name string, w io.Writer) error {
	if sess == nil {
		return models.ErrUnauthenticated
	}
	venues, err := ps.holidazeApi.GetProfileVenues(ctx, sess, name)
	if err != nil {
		return fmt.Errorf("failed to load venues of %s: %w", name, err)
	}

	managed := AnnotateManagedVenues(venues, ps.now())
	labels := make([]string, 0, len(managed))
	counts := make([]int, 0, len(managed))
	for _, mv := range managed {
		labels = append(labels, mv.Name)
		counts = append(counts, mv.UpcomingBookings)
	}
	return util.RenderBookingsChart(w, name, labels, counts)
}
