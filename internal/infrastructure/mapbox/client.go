package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/runanywhere/runanywhere/internal/config"
	"github.com/runanywhere/runanywhere/internal/domain"
	"github.com/runanywhere/runanywhere/internal/domain/repository"
)

type client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	profile     string
	logger      *zap.Logger
}

// NewMapboxClient создает новый клиент для Mapbox Directions API
func NewMapboxClient(cfg *config.MapboxConfig, logger *zap.Logger) repository.MapboxRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		profile:     cfg.WalkingProfile,
		logger:      logger,
	}
}

// GetWalkingRoute возвращает пешеходный маршрут from -> to с геометрией GeoJSON
func (c *client) GetWalkingRoute(
	ctx context.Context,
	from domain.Coordinate,
	to domain.Coordinate,
) (*domain.DirectionsRoute, error) {
	if c.accessToken == "" {
		return nil, fmt.Errorf("mapbox access token is not configured")
	}

	// Mapbox ожидает пары lon,lat через ";"
	coordinatesStr := formatCoordinate(from) + ";" + formatCoordinate(to)

	query := url.Values{}
	query.Set("geometries", "geojson")
	query.Set("overview", "full")
	query.Set("access_token", c.accessToken)

	reqURL := fmt.Sprintf("%s/directions/v5/%s/%s?%s",
		c.baseURL,
		c.profile,
		coordinatesStr,
		query.Encode(),
	)

	c.logger.Debug("Calling Mapbox Directions API",
		zap.String("profile", c.profile),
		zap.String("coordinates", coordinatesStr))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Mapbox API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("mapbox API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var directions domain.DirectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&directions); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if directions.Code != "Ok" {
		c.logger.Error("Mapbox API returned non-OK code",
			zap.String("code", directions.Code),
			zap.String("message", directions.Message))
		return nil, fmt.Errorf("mapbox API returned code: %s", directions.Code)
	}

	if len(directions.Routes) == 0 {
		return nil, fmt.Errorf("mapbox API returned no routes")
	}

	route := directions.Routes[0]

	c.logger.Debug("Mapbox Directions API call successful",
		zap.Float64("distance_m", route.Distance),
		zap.Int("points", len(route.Geometry.Coordinates)))

	return &route, nil
}

func formatCoordinate(c domain.Coordinate) string {
	return strconv.FormatFloat(c.Lon, 'f', 6, 64) + "," + strconv.FormatFloat(c.Lat, 'f', 6, 64)
}
