package store

import (
	"sync"
	"testing"

	"campus-map-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteStore_Empty(t *testing.T) {
	s := NewRouteStore()

	_, ok := s.Destination()
	assert.False(t, ok)
	_, ok = s.Position()
	assert.False(t, ok)
	assert.True(t, s.Route().Empty())
}

func TestRouteStore_WritesReplace(t *testing.T) {
	s := NewRouteStore()

	s.SetDestination(models.Destination{Label: "first"})
	s.SetDestination(models.Destination{Label: "second", Coordinate: models.Coordinate{Longitude: 1, Latitude: 2}})

	d, ok := s.Destination()
	require.True(t, ok)
	assert.Equal(t, "second", d.Label)

	s.SetRoute(models.Route{Coordinates: []models.Coordinate{{Longitude: 1}, {Longitude: 2}, {Longitude: 3}}})
	s.SetRoute(models.Route{Coordinates: []models.Coordinate{{Longitude: 9}}})

	assert.Equal(t, []models.Coordinate{{Longitude: 9}}, s.Route().Coordinates)
}

func TestRouteStore_RouteIsCopied(t *testing.T) {
	s := NewRouteStore()
	in := models.Route{Coordinates: []models.Coordinate{{Longitude: 1, Latitude: 1}}}

	s.SetRoute(in)
	in.Coordinates[0].Longitude = 5

	out := s.Route()
	out.Coordinates[0].Latitude = 7

	assert.Equal(t, models.Coordinate{Longitude: 1, Latitude: 1}, s.Route().Coordinates[0])
}

func TestRouteStore_ClearKeepsPosition(t *testing.T) {
	s := NewRouteStore()
	s.SetPosition(models.Coordinate{Longitude: -77.8, Latitude: 39.4})
	s.SetDestination(models.Destination{Label: "Library"})
	s.SetRoute(models.Route{Coordinates: []models.Coordinate{{}}})

	s.Clear()

	_, ok := s.Destination()
	assert.False(t, ok)
	assert.True(t, s.Route().Empty())
	pos, ok := s.Position()
	assert.True(t, ok)
	assert.Equal(t, models.Coordinate{Longitude: -77.8, Latitude: 39.4}, pos)
}

func TestRouteStore_ConcurrentAccess(t *testing.T) {
	s := NewRouteStore()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.SetRoute(models.Route{Coordinates: []models.Coordinate{{Longitude: float64(i)}}})
		}(i)
		go func() {
			defer wg.Done()
			_ = s.Route()
		}()
	}
	wg.Wait()

	assert.Len(t, s.Route().Coordinates, 1)
}
