package service

import (
	"context"
	"fmt"
	"time"

	"campus-map-api/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LocationRepository interface for dependency injection
type LocationRepository interface {
	InsertLocationPing(ctx context.Context, ping models.LocationPing) error
}

// PositionStore receives the device's latest position.
type PositionStore interface {
	SetPosition(models.Coordinate)
}

// LocationService records device positions.
type LocationService struct {
	repo   LocationRepository
	store  PositionStore
	now    func() time.Time
	logger zerolog.Logger
}

// NewLocationService creates a new location service
func NewLocationService(repo LocationRepository, store PositionStore, logger zerolog.Logger) *LocationService {
	return &LocationService{
		repo:   repo,
		store:  store,
		now:    time.Now,
		logger: logger.With().Str("component", "locations").Logger(),
	}
}

// RecordLocation makes coord the current position and appends it to the ping log.
// The position is updated even when persisting the ping fails.
func (s *LocationService) RecordLocation(ctx context.Context, coord models.Coordinate, accuracy *float64) (models.LocationPing, error) {
	if !coord.Valid() {
		return models.LocationPing{}, fmt.Errorf("service: %w: (%f, %f)", ErrInvalidLocation, coord.Latitude, coord.Longitude)
	}
	if accuracy != nil && *accuracy < 0 {
		return models.LocationPing{}, fmt.Errorf("service: %w: negative accuracy", ErrInvalidLocation)
	}

	ping := models.LocationPing{
		ID:         uuid.New(),
		Coordinate: coord,
		Accuracy:   accuracy,
		RecordedAt: s.now().UTC(),
	}

	s.store.SetPosition(coord)

	if err := s.repo.InsertLocationPing(ctx, ping); err != nil {
		s.logger.Error().Err(err).Str("ping_id", ping.ID.String()).Msg("failed to persist location ping")
		return ping, fmt.Errorf("service: failed to save location: %w", err)
	}
	return ping, nil
}
