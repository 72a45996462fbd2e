package geoapi

import (
	"context"
	"fmt"
	"net/url"
	"unicode/utf8"

	"campus-map-api/internal/models"
)

const (
	placesStatusOK          = "OK"
	placesStatusZeroResults = "ZERO_RESULTS"
)

type autocompleteResponse struct {
	Predictions []struct {
		PlaceID     string `json:"place_id"`
		Description string `json:"description"`
	} `json:"predictions"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

type placeDetailResponse struct {
	Result *struct {
		Geometry struct {
			Location *struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		FormattedAddress string `json:"formatted_address"`
	} `json:"result"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// Autocomplete returns place suggestions for text. Queries shorter than MinQueryLength
// never reach the provider. Failures are logged and yield an empty list.
func (c *Client) Autocomplete(ctx context.Context, text string) []models.PlaceSuggestion {
	suggestions := []models.PlaceSuggestion{}
	if utf8.RuneCountInString(text) < MinQueryLength {
		return suggestions
	}

	q := url.Values{}
	q.Set("input", text)
	q.Set("key", c.cfg.GoogleAPIKey)
	endpoint := c.cfg.PlacesBaseURL + "/maps/api/place/autocomplete/json?" + q.Encode()

	var resp autocompleteResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		c.logger.Error().Err(err).Str("query", text).Msg("autocomplete request failed")
		return suggestions
	}

	if resp.Status != "" && resp.Status != placesStatusOK && resp.Status != placesStatusZeroResults {
		c.logger.Error().
			Str("query", text).
			Str("status", resp.Status).
			Str("provider_error", resp.ErrorMessage).
			Msg("autocomplete rejected by provider")
		return suggestions
	}

	seen := make(map[string]struct{}, len(resp.Predictions))
	for _, p := range resp.Predictions {
		if p.PlaceID == "" {
			continue
		}
		if _, dup := seen[p.PlaceID]; dup {
			continue
		}
		seen[p.PlaceID] = struct{}{}
		suggestions = append(suggestions, models.PlaceSuggestion{ID: p.PlaceID, Label: p.Description})
	}

	return suggestions
}

// PlaceDetail resolves a suggestion id into a destination.
func (c *Client) PlaceDetail(ctx context.Context, placeID string) (models.Destination, error) {
	if placeID == "" {
		return models.Destination{}, fmt.Errorf("%w: empty place id", ErrLookupFailed)
	}

	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("key", c.cfg.GoogleAPIKey)
	endpoint := c.cfg.PlacesBaseURL + "/maps/api/place/details/json?" + q.Encode()

	var resp placeDetailResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		c.logger.Error().Err(err).Str("place_id", placeID).Msg("place detail request failed")
		return models.Destination{}, fmt.Errorf("%w: %v", ErrPlaceServiceUnavailable, err)
	}

	if resp.Status != "" && resp.Status != placesStatusOK {
		return models.Destination{}, fmt.Errorf("%w: provider status %s", ErrLookupFailed, resp.Status)
	}
	if resp.Result == nil || resp.Result.Geometry.Location == nil {
		return models.Destination{}, fmt.Errorf("%w: no result for place %s", ErrLookupFailed, placeID)
	}

	dest := models.Destination{
		Coordinate: models.Coordinate{
			Longitude: resp.Result.Geometry.Location.Lng,
			Latitude:  resp.Result.Geometry.Location.Lat,
		},
		Label: resp.Result.FormattedAddress,
	}
	if !dest.Coordinate.Valid() {
		return models.Destination{}, fmt.Errorf("%w: coordinate out of range for place %s", ErrLookupFailed, placeID)
	}

	return dest, nil
}
