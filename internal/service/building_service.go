package service

import (
	"context"
	"fmt"
	"strings"

	"campus-map-api/internal/models"

	"github.com/rs/zerolog"
)

// BuildingService contains the business logic for campus buildings
type BuildingService struct {
	repo   BuildingRepository
	logger zerolog.Logger
}

// BuildingRepository interface for dependency injection
type BuildingRepository interface {
	UpsertBuilding(ctx context.Context, b models.Building) error
	ListBuildings(ctx context.Context) ([]models.Building, error)
	GetBuilding(ctx context.Context, name string) (*models.Building, error)
	FindNearestBuilding(ctx context.Context, lat, lon float64) (*models.Building, error)
}

// NewBuildingService creates a new building service
func NewBuildingService(repo BuildingRepository, logger zerolog.Logger) *BuildingService {
	return &BuildingService{repo: repo, logger: logger.With().Str("component", "buildings").Logger()}
}

// List returns every building, ordered by name.
func (s *BuildingService) List(ctx context.Context) ([]models.Building, error) {
	buildings, err := s.repo.ListBuildings(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list buildings: %w", err)
	}
	if buildings == nil {
		buildings = []models.Building{}
	}
	return buildings, nil
}

// Get returns the building with the given name.
func (s *BuildingService) Get(ctx context.Context, name string) (*models.Building, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("service: %w: name cannot be empty", ErrInvalidBuilding)
	}

	b, err := s.repo.GetBuilding(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get building: %w", err)
	}
	return b, nil
}

// Nearest finds the closest building to the given coordinates using a spatial query
func (s *BuildingService) Nearest(ctx context.Context, lat, lon float64) (*models.Building, error) {
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("service: %w: latitude %f", ErrInvalidLocation, lat)
	}
	if lon < -180 || lon > 180 {
		return nil, fmt.Errorf("service: %w: longitude %f", ErrInvalidLocation, lon)
	}

	b, err := s.repo.FindNearestBuilding(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find nearest building: %w", err)
	}
	return b, nil
}

// Seed upserts buildings keyed by name, so running it again does not duplicate anything.
func (s *BuildingService) Seed(ctx context.Context, buildings []models.Building) (int, error) {
	for _, b := range buildings {
		if err := validateBuilding(b); err != nil {
			return 0, err
		}
	}

	for i, b := range buildings {
		if err := s.repo.UpsertBuilding(ctx, b); err != nil {
			return i, fmt.Errorf("service: failed to upsert building %q: %w", b.Name, err)
		}
	}

	s.logger.Info().Int("count", len(buildings)).Msg("buildings seeded")
	return len(buildings), nil
}

func validateBuilding(b models.Building) error {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("service: %w: name cannot be empty", ErrInvalidBuilding)
	}
	if !b.Coordinate().Valid() {
		return fmt.Errorf("service: %w: %q has coordinates out of range", ErrInvalidBuilding, b.Name)
	}
	return nil
}
