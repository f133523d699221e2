package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/runanywhere/runanywhere/internal/domain"
	"github.com/runanywhere/runanywhere/internal/domain/repository"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

// SegmentsKey - ключ кеша ответа explorer: segments:<activity>:<bounds>
func SegmentsKey(activityType string, bbox domain.BoundingBox) string {
	return fmt.Sprintf("segments:%s:%s", activityType, bbox.String())
}

// GetSegments получает сегменты из кеша, (nil, nil) при промахе
func (r *cacheRepository) GetSegments(ctx context.Context, activityType string, bbox domain.BoundingBox) ([]domain.ExploredSegment, error) {
	data, err := r.Get(ctx, SegmentsKey(activityType, bbox))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var segments []domain.ExploredSegment
	if err := json.Unmarshal(data, &segments); err != nil {
		r.logger.Error("Failed to unmarshal segments from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal segments: %w", err)
	}
	if segments == nil {
		segments = []domain.ExploredSegment{}
	}

	return segments, nil
}

// SetSegments сохраняет сегменты в кеше
func (r *cacheRepository) SetSegments(ctx context.Context, activityType string, bbox domain.BoundingBox, segments []domain.ExploredSegment, ttl time.Duration) error {
	if segments == nil {
		segments = []domain.ExploredSegment{}
	}

	data, err := json.Marshal(segments)
	if err != nil {
		r.logger.Error("Failed to marshal segments", zap.Error(err))
		return fmt.Errorf("marshal segments: %w", err)
	}

	return r.Set(ctx, SegmentsKey(activityType, bbox), data, ttl)
}
