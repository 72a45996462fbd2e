package handler

import (
	"errors"
	"net/http"

	"campus-map-api/internal/geoapi"
	"campus-map-api/internal/repository"
	"campus-map-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps service, provider and repository errors to a status and message.
func respondError(c *gin.Context, err error) {
	code, msg := mapError(err)
	c.JSON(code, ErrorResponse{Error: msg})
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidPlaceID),
		errors.Is(err, service.ErrInvalidLocation),
		errors.Is(err, service.ErrInvalidBuilding),
		errors.Is(err, service.ErrInvalidPlatform):
		return http.StatusBadRequest, err.Error()

	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, "not found"

	// The provider answered but had nothing for this place.
	case errors.Is(err, geoapi.ErrLookupFailed):
		return http.StatusNotFound, "place lookup failed"

	case errors.Is(err, geoapi.ErrPlaceServiceUnavailable):
		return http.StatusBadGateway, "search unavailable"

	case errors.Is(err, geoapi.ErrRouteLookupFailed):
		return http.StatusBadGateway, "route service unavailable"

	case errors.Is(err, service.ErrSuperseded):
		return http.StatusConflict, "superseded by a newer search"

	case errors.Is(err, service.ErrNavigationUnavailable):
		return http.StatusConflict, "position or destination unknown"

	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
