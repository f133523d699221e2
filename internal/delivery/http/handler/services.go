package handler

import (
	"context"

	"github.com/runanywhere/runanywhere/internal/domain"
	"github.com/runanywhere/runanywhere/internal/usecase/dto"
)

// SegmentService реализуется usecase.SegmentUseCase
type SegmentService interface {
	NearbySegments(ctx context.Context, req dto.NearbySegmentsRequest) (*dto.NearbySegmentsResponse, error)
}

// AuthService реализуется usecase.AuthUseCase
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, error)
	UsernameAvailable(ctx context.Context, username string) (bool, error)
	SaveRouteBin(ctx context.Context, userID int64, binID string) error
	SavedRouteBin(ctx context.Context, userID int64) (*string, error)
}

// RouteBinService реализуется usecase.RouteBinUseCase
type RouteBinService interface {
	Create(ctx context.Context, segment dto.Segment) (*dto.RouteBinResponse, error)
	Get(ctx context.Context, id string) (*dto.RouteBinResponse, error)
	Append(ctx context.Context, id string, segment dto.Segment) (*dto.RouteBinResponse, error)
	ExportGPX(ctx context.Context, id string) ([]byte, error)
	Connectors(ctx context.Context, id string) (*dto.ConnectorsResponse, error)
}
