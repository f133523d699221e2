package repository

import (
	"context"
	"time"

	"github.com/runanywhere/runanywhere/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу, (nil, nil) при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// GetSegments получает закешированный ответ explorer для bbox
	GetSegments(ctx context.Context, activityType string, bbox domain.BoundingBox) ([]domain.ExploredSegment, error)

	// SetSegments кеширует ответ explorer для bbox
	SetSegments(ctx context.Context, activityType string, bbox domain.BoundingBox, segments []domain.ExploredSegment, ttl time.Duration) error
}
