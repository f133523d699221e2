package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/runanywhere/runanywhere/internal/domain"
	"github.com/runanywhere/runanywhere/internal/domain/repository"
	"github.com/runanywhere/runanywhere/internal/pkg/errors"
	"github.com/runanywhere/runanywhere/internal/pkg/polyline"
	"github.com/runanywhere/runanywhere/internal/pkg/utils"
	"github.com/runanywhere/runanywhere/internal/usecase/dto"
)

// SegmentOptions - параметры поиска, приходят из конфига
type SegmentOptions struct {
	BBoxMargin   float64 // degrees, 0.01 by default
	ActivityType string
	CacheTTL     time.Duration
}

type SegmentUseCase struct {
	explorer  repository.SegmentExplorer
	cacheRepo repository.CacheRepository // nil disables caching
	logger    *zap.Logger
	opts      SegmentOptions
}

func NewSegmentUseCase(
	explorer repository.SegmentExplorer,
	cacheRepo repository.CacheRepository,
	opts SegmentOptions,
	logger *zap.Logger,
) *SegmentUseCase {
	if opts.BBoxMargin == 0 {
		opts.BBoxMargin = 0.01
	}
	if opts.ActivityType == "" {
		opts.ActivityType = domain.ActivityRunning
	}
	return &SegmentUseCase{
		explorer:  explorer,
		cacheRepo: cacheRepo,
		logger:    logger,
		opts:      opts,
	}
}

// NearbySegments ищет сегменты в квадрате center ± margin и переводит их в формат карты
func (uc *SegmentUseCase) NearbySegments(
	ctx context.Context,
	req dto.NearbySegmentsRequest,
) (*dto.NearbySegmentsResponse, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	bbox := utils.BoundingBoxAround(domain.Point{Lat: req.Lat, Lon: req.Lon}, uc.opts.BBoxMargin)

	segments, err := uc.explore(ctx, bbox)
	if err != nil {
		return nil, err
	}

	result := make([]dto.Segment, 0, len(segments))
	for _, s := range segments {
		points, err := polyline.DecodeLngLat(s.Points)
		if err != nil {
			uc.logger.Warn("Skipping segment with invalid polyline",
				zap.Int64("segment_id", s.ID),
				zap.Error(err),
			)
			continue
		}
		result = append(result, dto.ConvertSegment(s, points))
	}

	uc.logger.Debug("Nearby segments found",
		zap.Float64("lat", req.Lat),
		zap.Float64("lon", req.Lon),
		zap.Int("count", len(result)),
	)

	return &dto.NearbySegmentsResponse{Data: result}, nil
}

func (uc *SegmentUseCase) explore(ctx context.Context, bbox domain.BoundingBox) ([]domain.ExploredSegment, error) {
	activity := uc.opts.ActivityType

	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetSegments(ctx, activity, bbox)
		if err != nil {
			uc.logger.Warn("Segments cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	segments, err := uc.explorer.Explore(ctx, bbox, activity)
	if err != nil {
		uc.logger.Error("Segment explorer request failed",
			zap.String("bounds", bbox.String()),
			zap.Error(err),
		)
		return nil, errors.ErrUpstream
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetSegments(ctx, activity, bbox, segments, uc.opts.CacheTTL); err != nil {
			uc.logger.Warn("Segments cache write failed", zap.Error(err))
		}
	}

	return segments, nil
}
