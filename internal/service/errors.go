package service

import "errors"

var (
	// ErrInvalidPlaceID is returned when a selection carries no place id.
	ErrInvalidPlaceID = errors.New("invalid place id")

	// ErrSuperseded is returned when a newer search request was issued before this one completed.
	// Its result was discarded.
	ErrSuperseded = errors.New("superseded by a newer request")

	// ErrInvalidLocation is returned when coordinates are out of range.
	ErrInvalidLocation = errors.New("invalid location")

	// ErrInvalidBuilding is returned when a building record is incomplete.
	ErrInvalidBuilding = errors.New("invalid building")

	// ErrInvalidPlatform is returned for an unknown hand-off platform.
	ErrInvalidPlatform = errors.New("invalid platform")

	// ErrNavigationUnavailable is returned when navigation needs a position or destination that is not known yet.
	ErrNavigationUnavailable = errors.New("navigation unavailable: position or destination unknown")
)
