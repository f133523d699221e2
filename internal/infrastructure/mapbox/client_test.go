package mapbox

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/runanywhere/runanywhere/internal/config"
	"github.com/runanywhere/runanywhere/internal/domain"
)

func testConfig(baseURL string) *config.MapboxConfig {
	return &config.MapboxConfig{
		AccessToken:    "test_token",
		BaseURL:        baseURL,
		WalkingProfile: "mapbox/walking",
		RequestTimeout: 30,
	}
}

func TestClient_GetWalkingRoute(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	from := domain.Coordinate{Lat: 42.374346, Lon: -71.116404}
	to := domain.Coordinate{Lat: 42.377003, Lon: -71.116661}

	t.Run("successful request", func(t *testing.T) {
		mockResp := domain.DirectionsResponse{
			Code: "Ok",
			Routes: []domain.DirectionsRoute{
				{
					Geometry: domain.LineString{
						Type:        "LineString",
						Coordinates: [][]float64{{-71.116404, 42.374346}, {-71.1165, 42.3757}, {-71.116661, 42.377003}},
					},
					Distance: 312.4,
					Duration: 224.9,
				},
			},
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/directions/v5/mapbox/walking/-71.116404,42.374346;-71.116661,42.377003", r.URL.Path)
			assert.Equal(t, "geojson", r.URL.Query().Get("geometries"))
			assert.Equal(t, "test_token", r.URL.Query().Get("access_token"))

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(mockResp)
		}))
		defer server.Close()

		route, err := NewMapboxClient(testConfig(server.URL), logger).GetWalkingRoute(context.Background(), from, to)
		require.NoError(t, err)
		require.NotNil(t, route)
		assert.Equal(t, "LineString", route.Geometry.Type)
		assert.Len(t, route.Geometry.Coordinates, 3)
		assert.Equal(t, 312.4, route.Distance)
	})

	t.Run("missing token", func(t *testing.T) {
		cfg := testConfig("https://api.mapbox.com")
		cfg.AccessToken = ""

		route, err := NewMapboxClient(cfg, logger).GetWalkingRoute(context.Background(), from, to)
		assert.Error(t, err)
		assert.Nil(t, route)
		assert.Contains(t, err.Error(), "access token")
	})

	t.Run("api error response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"code":"InvalidInput","message":"Invalid coordinates"}`))
		}))
		defer server.Close()

		route, err := NewMapboxClient(testConfig(server.URL), logger).GetWalkingRoute(context.Background(), from, to)
		assert.Error(t, err)
		assert.Nil(t, route)
		assert.Contains(t, err.Error(), "mapbox API error")
	})

	t.Run("no route found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code":"NoRoute","message":"No route found","routes":[]}`))
		}))
		defer server.Close()

		route, err := NewMapboxClient(testConfig(server.URL), logger).GetWalkingRoute(context.Background(), from, to)
		assert.Error(t, err)
		assert.Nil(t, route)
		assert.Contains(t, err.Error(), "NoRoute")
	})

	t.Run("ok without routes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code":"Ok","routes":[]}`))
		}))
		defer server.Close()

		route, err := NewMapboxClient(testConfig(server.URL), logger).GetWalkingRoute(context.Background(), from, to)
		assert.Error(t, err)
		assert.Nil(t, route)
	})
}
