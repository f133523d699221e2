package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/runanywhere/runanywhere/internal/config"
	"github.com/runanywhere/runanywhere/internal/domain"
	"github.com/runanywhere/runanywhere/internal/domain/repository"
)

const explorePath = "/segments/explore"

type client struct {
	http        *resty.Client
	accessToken string
	logger      *zap.Logger
}

// NewStravaClient создает клиент для segment explorer
func NewStravaClient(cfg *config.StravaConfig, logger *zap.Logger) repository.SegmentExplorer {
	http := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.RequestTimeout)*time.Second).
		SetHeader("Accept", "application/json")

	if cfg.AccessToken != "" {
		http.SetAuthToken(cfg.AccessToken)
	}

	return &client{
		http:        http,
		accessToken: cfg.AccessToken,
		logger:      logger,
	}
}

// Explore возвращает сегменты внутри bbox для заданного типа активности
func (c *client) Explore(
	ctx context.Context,
	bbox domain.BoundingBox,
	activityType string,
) ([]domain.ExploredSegment, error) {
	if c.accessToken == "" {
		return nil, fmt.Errorf("strava access token is not configured")
	}
	if activityType == "" {
		activityType = domain.ActivityRunning
	}

	bounds := bbox.String()

	c.logger.Debug("Calling segment explorer",
		zap.String("bounds", bounds),
		zap.String("activity_type", activityType))

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"bounds":        bounds,
			"activity_type": activityType,
		}).
		Get(explorePath)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	if !resp.IsSuccess() {
		c.logger.Error("Strava API returned error",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("body", resp.String()))
		return nil, fmt.Errorf("strava API error: status %d, body: %s", resp.StatusCode(), resp.String())
	}

	var explore domain.ExploreResponse
	if err := json.Unmarshal(resp.Body(), &explore); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if explore.Segments == nil {
		explore.Segments = []domain.ExploredSegment{}
	}

	c.logger.Debug("Segment explorer call successful",
		zap.Int("segments", len(explore.Segments)))

	return explore.Segments, nil
}
