package geoapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"campus-map-api/internal/models"
)

type directionsResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// Route requests a path from origin to destination. A provider answer without routes
// yields an empty Route and no error.
func (c *Client) Route(ctx context.Context, origin, destination models.Coordinate) (models.Route, error) {
	endpoint := fmt.Sprintf("%s/directions/v5/mapbox/%s/%s;%s?%s",
		c.cfg.DirectionsBaseURL,
		url.PathEscape(c.cfg.Profile),
		lonLat(origin),
		lonLat(destination),
		url.Values{
			"geometries":   {"geojson"},
			"access_token": {c.cfg.MapboxToken},
		}.Encode(),
	)

	var resp directionsResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		c.logger.Error().Err(err).
			Str("origin", lonLat(origin)).
			Str("destination", lonLat(destination)).
			Msg("directions request failed")
		return models.Route{}, fmt.Errorf("%w: %v", ErrRouteLookupFailed, err)
	}

	if len(resp.Routes) == 0 {
		c.logger.Info().
			Str("code", resp.Code).
			Str("origin", lonLat(origin)).
			Str("destination", lonLat(destination)).
			Msg("directions returned no routes")
		return models.Route{Coordinates: []models.Coordinate{}}, nil
	}

	raw := resp.Routes[0].Geometry.Coordinates
	coords := make([]models.Coordinate, 0, len(raw))
	for i, pair := range raw {
		if len(pair) < 2 {
			return models.Route{}, fmt.Errorf("%w: malformed coordinate at index %d", ErrRouteLookupFailed, i)
		}
		coord := models.Coordinate{Longitude: pair[0], Latitude: pair[1]}
		if !coord.Valid() {
			return models.Route{}, fmt.Errorf("%w: coordinate out of range at index %d", ErrRouteLookupFailed, i)
		}
		coords = append(coords, coord)
	}

	return models.Route{Coordinates: coords}, nil
}

func lonLat(c models.Coordinate) string {
	return strconv.FormatFloat(c.Longitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Latitude, 'f', -1, 64)
}
