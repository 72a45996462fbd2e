package geoapi

import "errors"

var (
	// ErrLookupFailed is returned when a place id cannot be resolved to a destination.
	ErrLookupFailed = errors.New("place lookup failed")

	// ErrPlaceServiceUnavailable is returned when the places provider cannot be reached or answers garbage.
	ErrPlaceServiceUnavailable = errors.New("place service unavailable")

	// ErrRouteLookupFailed is returned when the directions provider cannot be reached or answers garbage.
	// A provider answer with zero routes is not an error.
	ErrRouteLookupFailed = errors.New("route lookup failed")
)
