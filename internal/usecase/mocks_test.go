package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/runanywhere/runanywhere/internal/domain"
)

// MockSegmentExplorer is a mock of SegmentExplorer
type MockSegmentExplorer struct {
	mock.Mock
}

func (m *MockSegmentExplorer) Explore(ctx context.Context, bbox domain.BoundingBox, activityType string) ([]domain.ExploredSegment, error) {
	args := m.Called(ctx, bbox, activityType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExploredSegment), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetSegments(ctx context.Context, activityType string, bbox domain.BoundingBox) ([]domain.ExploredSegment, error) {
	args := m.Called(ctx, activityType, bbox)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExploredSegment), args.Error(1)
}

func (m *MockCacheRepository) SetSegments(ctx context.Context, activityType string, bbox domain.BoundingBox, segments []domain.ExploredSegment, ttl time.Duration) error {
	args := m.Called(ctx, activityType, bbox, segments, ttl)
	return args.Error(0)
}

// MockUserRepository is a mock of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	args := m.Called(ctx, username, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateRouteBin(ctx context.Context, id int64, binID string) error {
	args := m.Called(ctx, id, binID)
	return args.Error(0)
}

// MockRouteBinRepository is a mock of RouteBinRepository
type MockRouteBinRepository struct {
	mock.Mock
}

func (m *MockRouteBinRepository) Create(ctx context.Context, segments []domain.RouteSegment) (*domain.RouteBin, error) {
	args := m.Called(ctx, segments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteBin), args.Error(1)
}

func (m *MockRouteBinRepository) Get(ctx context.Context, id uuid.UUID) (*domain.RouteBin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteBin), args.Error(1)
}

func (m *MockRouteBinRepository) Append(ctx context.Context, id uuid.UUID, segment domain.RouteSegment) (*domain.RouteBin, error) {
	args := m.Called(ctx, id, segment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteBin), args.Error(1)
}

// MockMapboxRepository is a mock of MapboxRepository
type MockMapboxRepository struct {
	mock.Mock
}

func (m *MockMapboxRepository) GetWalkingRoute(ctx context.Context, from, to domain.Coordinate) (*domain.DirectionsRoute, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DirectionsRoute), args.Error(1)
}
