package service

import (
	"context"
	"strconv"
	"strings"

	"campus-map-api/internal/animator"
	"campus-map-api/internal/models"

	"github.com/rs/zerolog"
)

// Hand-off platforms.
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
)

// Playback interface for dependency injection
type Playback interface {
	Start(ctx context.Context, route models.Route) (string, bool)
	Cancel() bool
	Status() animator.Status
}

// NavigationStore is the part of the route store navigation reads and clears.
type NavigationStore interface {
	Destination() (models.Destination, bool)
	Route() models.Route
	Position() (models.Coordinate, bool)
	Clear()
}

// NavigationService drives in-app playback and builds external hand-off links.
type NavigationService struct {
	store    NavigationStore
	playback Playback
	profile  string
	logger   zerolog.Logger
}

// NewNavigationService creates a new navigation service. profile is the travel mode, "driving" or "walking".
func NewNavigationService(store NavigationStore, playback Playback, profile string, logger zerolog.Logger) *NavigationService {
	return &NavigationService{
		store:    store,
		playback: playback,
		profile:  profile,
		logger:   logger.With().Str("component", "navigation").Logger(),
	}
}

// ExternalURL returns the deep link that opens the platform's maps application
// with directions from the current position to the destination.
func (s *NavigationService) ExternalURL(platform string) (string, error) {
	platform = strings.ToLower(strings.TrimSpace(platform))
	if platform == "" {
		platform = PlatformAndroid
	}
	switch platform {
	case PlatformIOS, PlatformAndroid, PlatformWeb:
	default:
		return "", ErrInvalidPlatform
	}

	origin, ok := s.store.Position()
	if !ok {
		return "", ErrNavigationUnavailable
	}
	dest, ok := s.store.Destination()
	if !ok {
		return "", ErrNavigationUnavailable
	}

	if platform == PlatformIOS {
		return "http://maps.apple.com/?saddr=" + latLon(origin) + "&daddr=" + latLon(dest.Coordinate), nil
	}
	return "https://www.google.com/maps/dir/?api=1&origin=" + latLon(origin) +
		"&destination=" + latLon(dest.Coordinate) +
		"&travelmode=" + s.profile, nil
}

// StartPlayback plays the stored route back. With no stored route nothing starts.
// Playback outlives ctx's cancellation; it ends on completion, CancelPlayback or ClearRoute.
func (s *NavigationService) StartPlayback(ctx context.Context) (animator.Status, bool) {
	_, started := s.playback.Start(context.WithoutCancel(ctx), s.store.Route())
	if !started {
		s.logger.Info().Msg("no route to play back")
	}
	return s.playback.Status(), started
}

// CancelPlayback stops playback. It reports whether a session was active.
func (s *NavigationService) CancelPlayback() bool {
	return s.playback.Cancel()
}

// PlaybackStatus returns the animator status.
func (s *NavigationService) PlaybackStatus() animator.Status {
	return s.playback.Status()
}

// ClearRoute stops playback and drops the destination and route.
func (s *NavigationService) ClearRoute() {
	s.playback.Cancel()
	s.store.Clear()
}

func latLon(c models.Coordinate) string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}
