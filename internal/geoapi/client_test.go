package geoapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"campus-map-api/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *int32) {
	t.Helper()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(Config{
		PlacesBaseURL:     srv.URL,
		DirectionsBaseURL: srv.URL,
		GoogleAPIKey:      "google-key",
		MapboxToken:       "mapbox-token",
		Profile:           "driving",
		Timeout:           2 * time.Second,
	}, srv.Client(), zerolog.Nop())

	return client, &calls
}

func TestClient_Autocomplete(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		status        int
		body          string
		expected      []models.PlaceSuggestion
		expectedCalls int32
	}{
		{
			name:          "single character never calls the provider",
			text:          "a",
			expected:      []models.PlaceSuggestion{},
			expectedCalls: 0,
		},
		{
			name:          "empty text",
			text:          "",
			expected:      []models.PlaceSuggestion{},
			expectedCalls: 0,
		},
		{
			name:   "predictions are mapped in order",
			text:   "Library",
			status: http.StatusOK,
			body:   `{"status":"OK","predictions":[{"place_id":"p1","description":"Library, Town"},{"place_id":"p2","description":"Library Lane"}]}`,
			expected: []models.PlaceSuggestion{
				{ID: "p1", Label: "Library, Town"},
				{ID: "p2", Label: "Library Lane"},
			},
			expectedCalls: 1,
		},
		{
			name:   "duplicate ids are dropped",
			text:   "Snyder",
			status: http.StatusOK,
			body:   `{"status":"OK","predictions":[{"place_id":"p1","description":"Snyder Hall"},{"place_id":"p1","description":"Snyder Hall"}]}`,
			expected: []models.PlaceSuggestion{
				{ID: "p1", Label: "Snyder Hall"},
			},
			expectedCalls: 1,
		},
		{
			name:          "zero results",
			text:          "zzzz",
			status:        http.StatusOK,
			body:          `{"status":"ZERO_RESULTS","predictions":[]}`,
			expected:      []models.PlaceSuggestion{},
			expectedCalls: 1,
		},
		{
			name:          "provider rejects the key",
			text:          "Library",
			status:        http.StatusOK,
			body:          `{"status":"REQUEST_DENIED","error_message":"bad key","predictions":[]}`,
			expected:      []models.PlaceSuggestion{},
			expectedCalls: 1,
		},
		{
			name:          "server error",
			text:          "Library",
			status:        http.StatusInternalServerError,
			body:          `oops`,
			expected:      []models.PlaceSuggestion{},
			expectedCalls: 1,
		},
		{
			name:          "malformed json",
			text:          "Library",
			status:        http.StatusOK,
			body:          `{"predictions":[`,
			expected:      []models.PlaceSuggestion{},
			expectedCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/maps/api/place/autocomplete/json", r.URL.Path)
				assert.Equal(t, tt.text, r.URL.Query().Get("input"))
				assert.Equal(t, "google-key", r.URL.Query().Get("key"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			result := client.Autocomplete(context.Background(), tt.text)

			assert.Equal(t, tt.expected, result)
			assert.Equal(t, tt.expectedCalls, atomic.LoadInt32(calls))
		})
	}
}

func TestClient_PlaceDetail(t *testing.T) {
	tests := []struct {
		name        string
		placeID     string
		status      int
		body        string
		expected    models.Destination
		expectedErr error
	}{
		{
			name:    "resolved",
			placeID: "p1",
			status:  http.StatusOK,
			body:    `{"status":"OK","result":{"geometry":{"location":{"lat":39.433,"lng":-77.804}},"formatted_address":"Library, Town"}}`,
			expected: models.Destination{
				Coordinate: models.Coordinate{Longitude: -77.804, Latitude: 39.433},
				Label:      "Library, Town",
			},
		},
		{
			name:        "not found",
			placeID:     "missing",
			status:      http.StatusOK,
			body:        `{"status":"NOT_FOUND"}`,
			expectedErr: ErrLookupFailed,
		},
		{
			name:        "ok without result",
			placeID:     "p1",
			status:      http.StatusOK,
			body:        `{"status":"OK"}`,
			expectedErr: ErrLookupFailed,
		},
		{
			name:        "coordinate out of range",
			placeID:     "p1",
			status:      http.StatusOK,
			body:        `{"status":"OK","result":{"geometry":{"location":{"lat":91,"lng":0}},"formatted_address":"Nowhere"}}`,
			expectedErr: ErrLookupFailed,
		},
		{
			name:        "server error",
			placeID:     "p1",
			status:      http.StatusBadGateway,
			body:        ``,
			expectedErr: ErrPlaceServiceUnavailable,
		},
		{
			name:        "malformed json",
			placeID:     "p1",
			status:      http.StatusOK,
			body:        `{"status":"OK","result":`,
			expectedErr: ErrPlaceServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/maps/api/place/details/json", r.URL.Path)
				assert.Equal(t, tt.placeID, r.URL.Query().Get("place_id"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			result, err := client.PlaceDetail(context.Background(), tt.placeID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestClient_PlaceDetail_EmptyID(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.PlaceDetail(context.Background(), "")

	assert.ErrorIs(t, err, ErrLookupFailed)
	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}

func TestClient_Route(t *testing.T) {
	origin := models.Coordinate{Longitude: -77.8, Latitude: 39.43}
	destination := models.Coordinate{Longitude: -77.804, Latitude: 39.433}

	tests := []struct {
		name        string
		status      int
		body        string
		expected    models.Route
		expectError bool
	}{
		{
			name:   "coordinates are returned verbatim",
			status: http.StatusOK,
			body:   `{"code":"Ok","routes":[{"geometry":{"type":"LineString","coordinates":[[-77.8,39.43],[-77.802,39.431],[-77.804,39.433]]}}]}`,
			expected: models.Route{Coordinates: []models.Coordinate{
				{Longitude: -77.8, Latitude: 39.43},
				{Longitude: -77.802, Latitude: 39.431},
				{Longitude: -77.804, Latitude: 39.433},
			}},
		},
		{
			name:     "no routes is an empty route",
			status:   http.StatusOK,
			body:     `{"code":"NoRoute","routes":[]}`,
			expected: models.Route{Coordinates: []models.Coordinate{}},
		},
		{
			name:        "server error",
			status:      http.StatusInternalServerError,
			body:        `{"message":"boom"}`,
			expectError: true,
		},
		{
			name:        "malformed json",
			status:      http.StatusOK,
			body:        `{"routes":[{"geometry":`,
			expectError: true,
		},
		{
			name:        "short coordinate pair",
			status:      http.StatusOK,
			body:        `{"code":"Ok","routes":[{"geometry":{"coordinates":[[-77.8]]}}]}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/directions/v5/mapbox/driving/-77.8,39.43;-77.804,39.433", r.URL.Path)
				assert.Equal(t, "geojson", r.URL.Query().Get("geometries"))
				assert.Equal(t, "mapbox-token", r.URL.Query().Get("access_token"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			result, err := client.Route(context.Background(), origin, destination)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrRouteLookupFailed)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestClient_PlaceDetail_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(Config{PlacesBaseURL: srv.URL, Timeout: time.Second}, nil, zerolog.Nop())

	_, err := client.PlaceDetail(context.Background(), "p1")

	assert.ErrorIs(t, err, ErrPlaceServiceUnavailable)
	assert.NotErrorIs(t, err, ErrLookupFailed)
}

func TestClient_Route_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(Config{DirectionsBaseURL: srv.URL, Timeout: time.Second}, nil, zerolog.Nop())

	_, err := client.Route(context.Background(), models.Coordinate{}, models.Coordinate{Longitude: 1, Latitude: 1})

	assert.ErrorIs(t, err, ErrRouteLookupFailed)
	assert.Equal(t, "driving", client.Profile())
}
