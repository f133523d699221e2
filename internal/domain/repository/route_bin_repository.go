package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/runanywhere/runanywhere/internal/domain"
)

// RouteBinRepository - хранилище наборов сегментов route builder
type RouteBinRepository interface {
	Create(ctx context.Context, segments []domain.RouteSegment) (*domain.RouteBin, error)

	// Get returns domain.ErrRouteBinNotFound for unknown ids.
	Get(ctx context.Context, id uuid.UUID) (*domain.RouteBin, error)

	// Append adds a segment to the end of the bin atomically.
	Append(ctx context.Context, id uuid.UUID, segment domain.RouteSegment) (*domain.RouteBin, error)
}
