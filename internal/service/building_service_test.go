package service

import (
	"context"
	"testing"

	"campus-map-api/internal/models"
	"campus-map-api/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBuildingRepository is a mock implementation of the BuildingRepository interface
type MockBuildingRepository struct {
	mock.Mock
}

func (m *MockBuildingRepository) UpsertBuilding(ctx context.Context, b models.Building) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBuildingRepository) ListBuildings(ctx context.Context) ([]models.Building, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Building), args.Error(1)
}

func (m *MockBuildingRepository) GetBuilding(ctx context.Context, name string) (*models.Building, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(*models.Building), args.Error(1)
}

func (m *MockBuildingRepository) FindNearestBuilding(ctx context.Context, lat float64, lon float64) (*models.Building, error) {
	args := m.Called(ctx, lat, lon)
	return args.Get(0).(*models.Building), args.Error(1)
}

var snyderHall = models.DefaultBuildings[1]

func TestBuildingService_Nearest(t *testing.T) {
	tests := []struct {
		name         string
		lat          float64
		lon          float64
		mockBuilding *models.Building
		mockError    error
		expected     *models.Building
		expectedErr  error
		expectCall   bool
	}{
		{
			name:        "latitude out of range",
			lat:         95,
			lon:         -77.8,
			expectedErr: ErrInvalidLocation,
		},
		{
			name:        "longitude out of range",
			lat:         39.4,
			lon:         -181,
			expectedErr: ErrInvalidLocation,
		},
		{
			name:         "nearest building",
			lat:          39.4324,
			lon:          -77.8047,
			mockBuilding: &snyderHall,
			expected:     &snyderHall,
			expectCall:   true,
		},
		{
			name:         "nothing nearby",
			lat:          10,
			lon:          10,
			mockBuilding: nil,
			mockError:    repository.ErrNotFound,
			expectedErr:  repository.ErrNotFound,
			expectCall:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockBuildingRepository)
			svc := NewBuildingService(mockRepo, zerolog.Nop())

			if tt.expectCall {
				mockRepo.On("FindNearestBuilding", mock.Anything, tt.lat, tt.lon).Return(tt.mockBuilding, tt.mockError)
			}

			result, err := svc.Nearest(context.Background(), tt.lat, tt.lon)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestBuildingService_List(t *testing.T) {
	mockRepo := new(MockBuildingRepository)
	svc := NewBuildingService(mockRepo, zerolog.Nop())
	mockRepo.On("ListBuildings", mock.Anything).Return([]models.Building(nil), nil).Once()
	mockRepo.On("ListBuildings", mock.Anything).Return([]models.Building{}, assert.AnError).Once()

	result, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []models.Building{}, result)

	_, err = svc.List(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuildingService_Get(t *testing.T) {
	mockRepo := new(MockBuildingRepository)
	svc := NewBuildingService(mockRepo, zerolog.Nop())
	mockRepo.On("GetBuilding", mock.Anything, "Snyder Hall").Return(&snyderHall, nil)

	result, err := svc.Get(context.Background(), "Snyder Hall")
	assert.NoError(t, err)
	assert.Equal(t, &snyderHall, result)

	_, err = svc.Get(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidBuilding)
	mockRepo.AssertNumberOfCalls(t, "GetBuilding", 1)
}

func TestBuildingService_Seed(t *testing.T) {
	tests := []struct {
		name          string
		buildings     []models.Building
		upsertErr     error
		expectedCount int
		expectedErr   error
		expectedCalls int
	}{
		{
			name:          "defaults",
			buildings:     models.DefaultBuildings,
			expectedCount: 2,
			expectedCalls: 2,
		},
		{
			name:          "missing name rejects the whole batch",
			buildings:     []models.Building{models.DefaultBuildings[0], {Latitude: 1, Longitude: 1}},
			expectedErr:   ErrInvalidBuilding,
			expectedCalls: 0,
		},
		{
			name:          "coordinates out of range",
			buildings:     []models.Building{{Name: "Moon Base", Latitude: 120}},
			expectedErr:   ErrInvalidBuilding,
			expectedCalls: 0,
		},
		{
			name:          "repository failure stops the seed",
			buildings:     models.DefaultBuildings,
			upsertErr:     assert.AnError,
			expectedErr:   assert.AnError,
			expectedCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockBuildingRepository)
			svc := NewBuildingService(mockRepo, zerolog.Nop())
			mockRepo.On("UpsertBuilding", mock.Anything, mock.Anything).Return(tt.upsertErr)

			count, err := svc.Seed(context.Background(), tt.buildings)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCount, count)
			}
			mockRepo.AssertNumberOfCalls(t, "UpsertBuilding", tt.expectedCalls)
		})
	}
}
