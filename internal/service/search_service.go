package service

import (
	"context"
	"fmt"
	"sync"
	"unicode/utf8"

	"campus-map-api/internal/geoapi"
	"campus-map-api/internal/models"

	"github.com/rs/zerolog"
)

// Phase is the state of the search box.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSuggesting Phase = "suggesting"
	PhaseResolving  Phase = "resolving"
	// PhaseResolved, PhaseLookupFailed and PhaseRouteFailed are where a selection rests until the next keystroke.
	PhaseResolved     Phase = "resolved"
	PhaseLookupFailed Phase = "lookup_failed"
	PhaseRouteFailed  Phase = "route_failed"
)

// RouteStatus tells a found route apart from the two ways of not having one.
type RouteStatus string

const (
	RouteFound         RouteStatus = "found"
	RouteNone          RouteStatus = "no_route"
	RouteOriginUnknown RouteStatus = "origin_unknown"
)

// SearchState is a snapshot of the search box.
type SearchState struct {
	Phase       Phase                    `json:"phase"`
	Query       string                   `json:"query"`
	Suggestions []models.PlaceSuggestion `json:"suggestions"`
}

// Selection is the outcome of resolving a suggestion.
type Selection struct {
	Destination models.Destination `json:"destination"`
	Route       models.Route       `json:"route"`
	RouteStatus RouteStatus        `json:"route_status"`
}

// GeoAPI interface for dependency injection
type GeoAPI interface {
	Autocomplete(ctx context.Context, text string) []models.PlaceSuggestion
	PlaceDetail(ctx context.Context, placeID string) (models.Destination, error)
	Route(ctx context.Context, origin, destination models.Coordinate) (models.Route, error)
}

// SearchStore is the part of the route store the search pipeline writes to.
type SearchStore interface {
	SetDestination(models.Destination)
	SetRoute(models.Route)
	Position() (models.Coordinate, bool)
}

// SearchPipeline turns keystrokes into suggestions and a selection into a destination and route.
// Every Suggest and Select takes a sequence number; only the newest one may write results.
type SearchPipeline struct {
	api    GeoAPI
	store  SearchStore
	logger zerolog.Logger

	mu          sync.Mutex
	seq         uint64
	phase       Phase
	query       string
	suggestions []models.PlaceSuggestion
}

// NewSearchPipeline creates a new search pipeline in the idle phase
func NewSearchPipeline(api GeoAPI, store SearchStore, logger zerolog.Logger) *SearchPipeline {
	return &SearchPipeline{
		api:         api,
		store:       store,
		logger:      logger.With().Str("component", "search").Logger(),
		phase:       PhaseIdle,
		suggestions: []models.PlaceSuggestion{},
	}
}

// Suggest handles a keystroke. It returns the provider's suggestions and whether they
// were applied to the search state; a result overtaken by a newer request is not.
func (p *SearchPipeline) Suggest(ctx context.Context, text string) ([]models.PlaceSuggestion, bool) {
	p.mu.Lock()
	p.seq++
	seq := p.seq
	p.query = text
	if utf8.RuneCountInString(text) < geoapi.MinQueryLength {
		p.phase = PhaseIdle
		p.suggestions = []models.PlaceSuggestion{}
		p.mu.Unlock()
		return []models.PlaceSuggestion{}, true
	}
	p.phase = PhaseSuggesting
	p.mu.Unlock()

	suggestions := p.api.Autocomplete(ctx, text)

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq != p.seq {
		p.logger.Debug().Str("query", text).Msg("discarding stale suggestions")
		return suggestions, false
	}
	p.suggestions = suggestions
	return suggestions, true
}

// Select resolves placeID into a destination and requests a route to it from the last
// known position. The route store is only written when this is still the newest request.
func (p *SearchPipeline) Select(ctx context.Context, placeID string) (Selection, error) {
	if placeID == "" {
		return Selection{}, ErrInvalidPlaceID
	}

	p.mu.Lock()
	p.seq++
	seq := p.seq
	p.suggestions = []models.PlaceSuggestion{}
	p.phase = PhaseResolving
	p.mu.Unlock()

	dest, err := p.api.PlaceDetail(ctx, placeID)
	if err != nil {
		p.mu.Lock()
		defer p.mu.Unlock()
		if seq == p.seq {
			p.phase = PhaseLookupFailed
		}
		p.logger.Warn().Err(err).Str("place_id", placeID).Msg("place lookup failed")
		return Selection{}, fmt.Errorf("service: failed to resolve place: %w", err)
	}

	p.mu.Lock()
	superseded := seq != p.seq
	p.mu.Unlock()
	if superseded {
		return Selection{}, ErrSuperseded
	}

	origin, ok := p.store.Position()
	if !ok {
		p.mu.Lock()
		defer p.mu.Unlock()
		if seq != p.seq {
			return Selection{}, ErrSuperseded
		}
		p.store.SetDestination(dest)
		p.query = dest.Label
		p.phase = PhaseResolved
		p.logger.Info().Str("place_id", placeID).Msg("no known position, skipping route lookup")
		return Selection{
			Destination: dest,
			Route:       models.Route{Coordinates: []models.Coordinate{}},
			RouteStatus: RouteOriginUnknown,
		}, nil
	}

	route, err := p.api.Route(ctx, origin, dest.Coordinate)

	// Destination and route are written together, and only by the newest request.
	p.mu.Lock()
	defer p.mu.Unlock()
	if seq != p.seq {
		return Selection{}, ErrSuperseded
	}
	p.store.SetDestination(dest)
	p.query = dest.Label
	if err != nil {
		// The previously stored route is left as is.
		p.phase = PhaseRouteFailed
		return Selection{Destination: dest}, fmt.Errorf("service: failed to fetch route: %w", err)
	}
	p.phase = PhaseResolved

	p.store.SetRoute(route)

	status := RouteFound
	if route.Empty() {
		status = RouteNone
	}
	p.logger.Info().
		Str("place_id", placeID).
		Str("route_status", string(status)).
		Int("points", len(route.Coordinates)).
		Msg("destination resolved")

	return Selection{Destination: dest, Route: route, RouteStatus: status}, nil
}

// State returns a snapshot of the search box.
func (p *SearchPipeline) State() SearchState {
	p.mu.Lock()
	defer p.mu.Unlock()
	suggestions := make([]models.PlaceSuggestion, len(p.suggestions))
	copy(suggestions, p.suggestions)
	return SearchState{Phase: p.phase, Query: p.query, Suggestions: suggestions}
}
