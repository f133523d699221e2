package repository

import (
	"context"

	"github.com/runanywhere/runanywhere/internal/domain"
)

// UserRepository - хранилище учётных записей
type UserRepository interface {
	// Create returns domain.ErrUserExists when the username is taken.
	Create(ctx context.Context, username, passwordHash string) (*domain.User, error)

	// GetByUsername returns domain.ErrUserNotFound when there is no such user.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	GetByID(ctx context.Context, id int64) (*domain.User, error)

	Exists(ctx context.Context, username string) (bool, error)

	UpdateRouteBin(ctx context.Context, id int64, binID string) error
}
