package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/runanywhere/runanywhere/internal/domain"
	"github.com/runanywhere/runanywhere/internal/usecase/dto"
)

type MockSegmentService struct {
	mock.Mock
}

func (m *MockSegmentService) NearbySegments(ctx context.Context, req dto.NearbySegmentsRequest) (*dto.NearbySegmentsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.NearbySegmentsResponse), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) UsernameAvailable(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuthService) SaveRouteBin(ctx context.Context, userID int64, binID string) error {
	args := m.Called(ctx, userID, binID)
	return args.Error(0)
}

func (m *MockAuthService) SavedRouteBin(ctx context.Context, userID int64) (*string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

type MockRouteBinService struct {
	mock.Mock
}

func (m *MockRouteBinService) Create(ctx context.Context, segment dto.Segment) (*dto.RouteBinResponse, error) {
	args := m.Called(ctx, segment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RouteBinResponse), args.Error(1)
}

func (m *MockRouteBinService) Get(ctx context.Context, id string) (*dto.RouteBinResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RouteBinResponse), args.Error(1)
}

func (m *MockRouteBinService) Append(ctx context.Context, id string, segment dto.Segment) (*dto.RouteBinResponse, error) {
	args := m.Called(ctx, id, segment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RouteBinResponse), args.Error(1)
}

func (m *MockRouteBinService) ExportGPX(ctx context.Context, id string) ([]byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRouteBinService) Connectors(ctx context.Context, id string) (*dto.ConnectorsResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConnectorsResponse), args.Error(1)
}
