package handler

import (
	"context"
	"net/http"

	"campus-map-api/internal/models"
	"campus-map-api/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles destination search requests
type SearchHandler struct {
	service SearchService
}

// SearchService interface for dependency injection
type SearchService interface {
	Suggest(ctx context.Context, text string) ([]models.PlaceSuggestion, bool)
	Select(ctx context.Context, placeID string) (service.Selection, error)
	State() service.SearchState
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(svc SearchService) *SearchHandler {
	return &SearchHandler{service: svc}
}

// AutocompleteResponse is the body of GET /search/autocomplete.
type AutocompleteResponse struct {
	Query       string                   `json:"query"`
	Suggestions []models.PlaceSuggestion `json:"suggestions"`
	Stale       bool                     `json:"stale"`
}

// SelectRequest is the body of POST /search/select.
type SelectRequest struct {
	PlaceID string `json:"place_id" binding:"required"`
}

// Autocomplete handles GET /search/autocomplete requests
//
//	@Summary	Suggest places for a partial query
//	@Tags		search
//	@Produce	json
//	@Param		q	query		string	true	"search box text"
//	@Success	200	{object}	AutocompleteResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/search/autocomplete [get]
func (h *SearchHandler) Autocomplete(c *gin.Context) {
	query, ok := c.GetQuery("q")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing required query parameter 'q'"})
		return
	}

	suggestions, applied := h.service.Suggest(c.Request.Context(), query)

	c.JSON(http.StatusOK, AutocompleteResponse{
		Query:       query,
		Suggestions: suggestions,
		Stale:       !applied,
	})
}

// Select handles POST /search/select requests
//
//	@Summary	Resolve a suggestion and fetch a route to it
//	@Tags		search
//	@Accept		json
//	@Produce	json
//	@Param		body	body		SelectRequest	true	"selected suggestion"
//	@Success	200		{object}	service.Selection
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Failure	502		{object}	ErrorResponse
//	@Router		/search/select [post]
func (h *SearchHandler) Select(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "request body must contain 'place_id'"})
		return
	}

	selection, err := h.service.Select(c.Request.Context(), req.PlaceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, selection)
}

// State handles GET /search requests
//
//	@Summary	Current search box state
//	@Tags		search
//	@Produce	json
//	@Success	200	{object}	service.SearchState
//	@Router		/search [get]
func (h *SearchHandler) State(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.State())
}
