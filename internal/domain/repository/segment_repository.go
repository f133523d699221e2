package repository

import (
	"context"

	"github.com/runanywhere/runanywhere/internal/domain"
)

// SegmentExplorer - внешний поиск сегментов в bounding box
type SegmentExplorer interface {
	Explore(ctx context.Context, bbox domain.BoundingBox, activityType string) ([]domain.ExploredSegment, error)
}
