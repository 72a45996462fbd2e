package handler

import (
	"context"
	"net/http"
	"strconv"

	"campus-map-api/internal/models"

	"github.com/gin-gonic/gin"
)

// BuildingHandler serves campus buildings
type BuildingHandler struct {
	service BuildingService
}

// BuildingService interface for dependency injection
type BuildingService interface {
	List(ctx context.Context) ([]models.Building, error)
	Get(ctx context.Context, name string) (*models.Building, error)
	Nearest(ctx context.Context, lat, lon float64) (*models.Building, error)
}

// NewBuildingHandler creates a new building handler
func NewBuildingHandler(svc BuildingService) *BuildingHandler {
	return &BuildingHandler{service: svc}
}

// List handles GET /buildings requests
//
//	@Summary	All campus buildings
//	@Tags		buildings
//	@Produce	json
//	@Success	200	{array}	models.Building
//	@Router		/buildings [get]
func (h *BuildingHandler) List(c *gin.Context) {
	buildings, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, buildings)
}

// Get handles GET /buildings/:name requests
//
//	@Summary	One building, for the detail modal
//	@Tags		buildings
//	@Produce	json
//	@Param		name	path		string	true	"building name"
//	@Success	200		{object}	models.Building
//	@Failure	404		{object}	ErrorResponse
//	@Router		/buildings/{name} [get]
func (h *BuildingHandler) Get(c *gin.Context) {
	building, err := h.service.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, building)
}

// Nearest handles GET /buildings/nearest requests
//
//	@Summary	Closest building to a point
//	@Tags		buildings
//	@Produce	json
//	@Param		lat	query		number	true	"latitude"
//	@Param		lon	query		number	true	"longitude"
//	@Success	200	{object}	models.Building
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/buildings/nearest [get]
func (h *BuildingHandler) Nearest(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing required query parameters 'lat' and 'lon'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid latitude format"})
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid longitude format"})
		return
	}

	building, err := h.service.Nearest(c.Request.Context(), lat, lon)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, building)
}
