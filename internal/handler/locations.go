package handler

import (
	"context"
	"net/http"

	"campus-map-api/internal/models"

	"github.com/gin-gonic/gin"
)

// LocationHandler records device positions
type LocationHandler struct {
	service LocationService
}

// LocationService interface for dependency injection
type LocationService interface {
	RecordLocation(ctx context.Context, coord models.Coordinate, accuracy *float64) (models.LocationPing, error)
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{service: svc}
}

// LocationRequest is the body of POST /locations.
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Accuracy  *float64 `json:"accuracy"`
}

// Record handles POST /locations requests
//
//	@Summary	Record the device position
//	@Tags		locations
//	@Accept		json
//	@Produce	json
//	@Param		body	body		LocationRequest	true	"device position"
//	@Success	201		{object}	models.LocationPing
//	@Failure	400		{object}	ErrorResponse
//	@Router		/locations [post]
func (h *LocationHandler) Record(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "request body must contain 'latitude' and 'longitude'"})
		return
	}

	ping, err := h.service.RecordLocation(c.Request.Context(), models.Coordinate{
		Longitude: *req.Longitude,
		Latitude:  *req.Latitude,
	}, req.Accuracy)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ping)
}
