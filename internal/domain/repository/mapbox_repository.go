package repository

import (
	"context"

	"github.com/runanywhere/runanywhere/internal/domain"
)

// MapboxRepository определяет методы для работы с Mapbox API
type MapboxRepository interface {
	// GetWalkingRoute возвращает пешеходный маршрут между двумя точками
	GetWalkingRoute(ctx context.Context, from, to domain.Coordinate) (*domain.DirectionsRoute, error)
}
