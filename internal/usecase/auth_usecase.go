package usecase

import (
	"context"
	stderrors "errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/runanywhere/runanywhere/internal/domain"
	"github.com/runanywhere/runanywhere/internal/domain/repository"
	"github.com/runanywhere/runanywhere/internal/pkg/errors"
	"github.com/runanywhere/runanywhere/internal/usecase/dto"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
	hashCost int
}

func NewAuthUseCase(userRepo repository.UserRepository, logger *zap.Logger) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		logger:   logger,
		hashCost: bcrypt.DefaultCost,
	}
}

// bcrypt не принимает пароли длиннее 72 байт
const maxPasswordBytes = 72

// normalizeUsername - логины регистронезависимы
func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func (uc *AuthUseCase) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	username := normalizeUsername(req.Username)
	if username == "" || req.Password == "" || req.Confirmation == "" {
		return nil, errors.ErrInvalidForm
	}
	if req.Password != req.Confirmation {
		return nil, errors.ErrInvalidForm.WithMessage("Passwords do not match")
	}
	if len(req.Password) > maxPasswordBytes {
		return nil, errors.ErrInvalidForm.WithMessage("Password must be at most 72 bytes")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.hashCost)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	user, err := uc.userRepo.Create(ctx, username, string(hash))
	if err != nil {
		if stderrors.Is(err, domain.ErrUserExists) {
			return nil, errors.ErrUsernameTaken
		}
		uc.logger.Error("Failed to register user", zap.String("username", username), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	uc.logger.Info("User registered", zap.Int64("user_id", user.ID))
	return user, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, error) {
	username := normalizeUsername(req.Username)
	if username == "" || req.Password == "" {
		return nil, errors.ErrInvalidForm
	}

	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if stderrors.Is(err, domain.ErrUserNotFound) {
			return nil, errors.ErrInvalidCredentials
		}
		uc.logger.Error("Failed to load user", zap.String("username", username), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	return user, nil
}

// UsernameAvailable - true, если имя непустое и свободно
func (uc *AuthUseCase) UsernameAvailable(ctx context.Context, username string) (bool, error) {
	username = normalizeUsername(username)
	if username == "" {
		return false, nil
	}

	exists, err := uc.userRepo.Exists(ctx, username)
	if err != nil {
		uc.logger.Error("Failed to check username", zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	return !exists, nil
}

func (uc *AuthUseCase) SaveRouteBin(ctx context.Context, userID int64, binID string) error {
	binID = strings.TrimSpace(binID)
	if binID == "" {
		return errors.ErrInvalidRequest
	}

	if err := uc.userRepo.UpdateRouteBin(ctx, userID, binID); err != nil {
		if stderrors.Is(err, domain.ErrUserNotFound) {
			return errors.ErrUnauthorized
		}
		uc.logger.Error("Failed to save route bin", zap.Int64("user_id", userID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

// SavedRouteBin returns nil when the user has not saved anything yet.
func (uc *AuthUseCase) SavedRouteBin(ctx context.Context, userID int64) (*string, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, domain.ErrUserNotFound) {
			return nil, errors.ErrUnauthorized
		}
		uc.logger.Error("Failed to load user", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return user.RouteBin, nil
}
