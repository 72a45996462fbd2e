package handler

import (
	"net/http"

	"campus-map-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// RouteHandler serves the current destination and route
type RouteHandler struct {
	store   RouteReader
	clearer RouteClearer
}

// RouteReader is the read side of the route store.
type RouteReader interface {
	Destination() (models.Destination, bool)
	Route() models.Route
}

// RouteClearer drops the current route.
type RouteClearer interface {
	ClearRoute()
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(store RouteReader, clearer RouteClearer) *RouteHandler {
	return &RouteHandler{store: store, clearer: clearer}
}

// RouteResponse is the body of GET /route.
type RouteResponse struct {
	Destination *models.Destination `json:"destination"`
	Route       models.Route        `json:"route"`
}

// GetRoute handles GET /route requests
//
//	@Summary	Current destination and route
//	@Tags		route
//	@Produce	json
//	@Param		format	query		string	false	"'geojson' for a GeoJSON LineString feature"
//	@Success	200		{object}	RouteResponse
//	@Router		/route [get]
func (h *RouteHandler) GetRoute(c *gin.Context) {
	route := h.store.Route()
	dest, hasDest := h.store.Destination()

	if c.Query("format") == "geojson" {
		c.JSON(http.StatusOK, routeFeature(route, dest, hasDest))
		return
	}

	resp := RouteResponse{Route: route}
	if hasDest {
		resp.Destination = &dest
	}
	c.JSON(http.StatusOK, resp)
}

// ClearRoute handles DELETE /route requests
//
//	@Summary	Drop the destination and route, stopping playback
//	@Tags		route
//	@Success	204
//	@Router		/route [delete]
func (h *RouteHandler) ClearRoute(c *gin.Context) {
	h.clearer.ClearRoute()
	c.Status(http.StatusNoContent)
}

func routeFeature(route models.Route, dest models.Destination, hasDest bool) *geojson.Feature {
	line := make(orb.LineString, 0, len(route.Coordinates))
	for _, p := range route.Coordinates {
		line = append(line, orb.Point{p.Longitude, p.Latitude})
	}

	feature := geojson.NewFeature(line)
	if hasDest {
		feature.Properties["destination"] = dest.Label
	}
	return feature
}
