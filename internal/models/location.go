package models

import (
	"time"

	"github.com/google/uuid"
)

// Coordinate is a geographic point. Longitude comes first, matching the [lon, lat] order of GeoJSON.
type Coordinate struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Valid reports whether the coordinate lies within the WGS84 bounds.
func (c Coordinate) Valid() bool {
	return c.Longitude >= -180 && c.Longitude <= 180 && c.Latitude >= -90 && c.Latitude <= 90
}

// LocationPing is one recorded device position.
type LocationPing struct {
	ID         uuid.UUID  `json:"id"`
	Coordinate Coordinate `json:"coordinate"`
	Accuracy   *float64   `json:"accuracy,omitempty"`
	RecordedAt time.Time  `json:"recorded_at"`
}
