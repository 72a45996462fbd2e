package store

import (
	"sync"

	"campus-map-api/internal/models"
)

// RouteStore holds the current destination, route, and last known device position.
// Every write replaces the previous value. Readers get copies.
type RouteStore struct {
	mu          sync.RWMutex
	destination *models.Destination
	route       models.Route
	position    *models.Coordinate
}

// NewRouteStore creates an empty store.
func NewRouteStore() *RouteStore {
	return &RouteStore{route: models.Route{Coordinates: []models.Coordinate{}}}
}

// SetDestination replaces the current destination.
func (s *RouteStore) SetDestination(d models.Destination) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destination = &d
}

// SetRoute replaces the current route.
func (s *RouteStore) SetRoute(r models.Route) {
	r = r.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.route = r
}

// SetPosition records the device's last known position.
func (s *RouteStore) SetPosition(c models.Coordinate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.position = &c
}

// Clear drops the destination and route. The device position is kept.
func (s *RouteStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destination = nil
	s.route = models.Route{Coordinates: []models.Coordinate{}}
}

// Destination returns the current destination, if any.
func (s *RouteStore) Destination() (models.Destination, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.destination == nil {
		return models.Destination{}, false
	}
	return *s.destination, true
}

// Route returns a copy of the current route.
func (s *RouteStore) Route() models.Route {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.route.Clone()
}

// Position returns the last known device position, if any.
func (s *RouteStore) Position() (models.Coordinate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.position == nil {
		return models.Coordinate{}, false
	}
	return *s.position, true
}
