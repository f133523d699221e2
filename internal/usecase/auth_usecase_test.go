package usecase_test

import (
	"context"
	"strings"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/runanywhere/runanywhere/internal/domain"
	"github.com/runanywhere/runanywhere/internal/pkg/errors"
	"github.com/runanywhere/runanywhere/internal/usecase"
	"github.com/runanywhere/runanywhere/internal/usecase/dto"
)

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthUseCase_Register(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("success lower-cases username and hashes password", func(t *testing.T) {
		repo := &MockUserRepository{}
		uc := usecase.NewAuthUseCase(repo, logger)

		validHash := mock.MatchedBy(func(hash string) bool {
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret")) == nil
		})
		repo.On("Create", ctx, "alice", validHash).Return(&domain.User{ID: 1, Username: "alice"}, nil)

		user, err := uc.Register(ctx, dto.RegisterRequest{Username: "  Alice ", Password: "secret", Confirmation: "secret"})

		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		repo.AssertExpectations(t)
	})

	t.Run("missing fields", func(t *testing.T) {
		repo := &MockUserRepository{}
		uc := usecase.NewAuthUseCase(repo, logger)

		for _, req := range []dto.RegisterRequest{
			{Password: "a", Confirmation: "a"},
			{Username: "bob", Confirmation: "a"},
			{Username: "bob", Password: "a"},
		} {
			_, err := uc.Register(ctx, req)
			assert.ErrorIs(t, err, errors.ErrInvalidForm)
		}
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("password mismatch", func(t *testing.T) {
		repo := &MockUserRepository{}
		uc := usecase.NewAuthUseCase(repo, logger)

		_, err := uc.Register(ctx, dto.RegisterRequest{Username: "bob", Password: "a", Confirmation: "b"})

		assert.ErrorIs(t, err, errors.ErrInvalidForm)
	})

	t.Run("username taken", func(t *testing.T) {
		repo := &MockUserRepository{}
		uc := usecase.NewAuthUseCase(repo, logger)

		repo.On("Create", ctx, "bob", mock.AnythingOfType("string")).Return(nil, domain.ErrUserExists)

		_, err := uc.Register(ctx, dto.RegisterRequest{Username: "bob", Password: "a", Confirmation: "a"})

		assert.ErrorIs(t, err, errors.ErrUsernameTaken)
	})

	t.Run("password longer than bcrypt limit", func(t *testing.T) {
		repo := &MockUserRepository{}
		uc := usecase.NewAuthUseCase(repo, logger)

		long := strings.Repeat("a", 73)
		_, err := uc.Register(ctx, dto.RegisterRequest{Username: "bob", Password: long, Confirmation: long})

		assert.ErrorIs(t, err, errors.ErrInvalidForm)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	stored := &domain.User{ID: 7, Username: "carol", PasswordHash: hashPassword(t, "pw")}

	t.Run("success", func(t *testing.T) {
		repo := &MockUserRepository{}
		uc := usecase.NewAuthUseCase(repo, logger)
		repo.On("GetByUsername", ctx, "carol").Return(stored, nil)

		user, err := uc.Login(ctx, dto.LoginRequest{Username: "Carol", Password: "pw"})

		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := &MockUserRepository{}
		uc := usecase.NewAuthUseCase(repo, logger)
		repo.On("GetByUsername", ctx, "carol").Return(stored, nil)

		_, err := uc.Login(ctx, dto.LoginRequest{Username: "carol", Password: "nope"})

		assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := &MockUserRepository{}
		uc := usecase.NewAuthUseCase(repo, logger)
		repo.On("GetByUsername", ctx, "dave").Return(nil, domain.ErrUserNotFound)

		_, err := uc.Login(ctx, dto.LoginRequest{Username: "dave", Password: "pw"})

		assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		uc := usecase.NewAuthUseCase(&MockUserRepository{}, logger)

		_, err := uc.Login(ctx, dto.LoginRequest{Username: "carol"})

		assert.ErrorIs(t, err, errors.ErrInvalidForm)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &MockUserRepository{}
		uc := usecase.NewAuthUseCase(repo, logger)
		repo.On("GetByUsername", ctx, "carol").Return(nil, stderrors.New("connection refused"))

		_, err := uc.Login(ctx, dto.LoginRequest{Username: "carol", Password: "pw"})

		assert.ErrorIs(t, err, errors.ErrDatabaseError)
	})
}

func TestAuthUseCase_UsernameAvailable(t *testing.T) {
	ctx := context.Background()
	repo := &MockUserRepository{}
	uc := usecase.NewAuthUseCase(repo, zap.NewNop())

	repo.On("Exists", ctx, "taken").Return(true, nil)
	repo.On("Exists", ctx, "free").Return(false, nil)

	ok, err := uc.UsernameAvailable(ctx, "Taken")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = uc.UsernameAvailable(ctx, "free")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.UsernameAvailable(ctx, "   ")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthUseCase_RouteBin(t *testing.T) {
	ctx := context.Background()

	t.Run("save and load", func(t *testing.T) {
		repo := &MockUserRepository{}
		uc := usecase.NewAuthUseCase(repo, zap.NewNop())

		binID := "6f1c2c4e-0000-4000-8000-000000000001"
		repo.On("UpdateRouteBin", ctx, int64(3), binID).Return(nil)
		repo.On("GetByID", ctx, int64(3)).Return(&domain.User{ID: 3, RouteBin: &binID}, nil)

		require.NoError(t, uc.SaveRouteBin(ctx, 3, binID))

		saved, err := uc.SavedRouteBin(ctx, 3)
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, binID, *saved)
	})

	t.Run("empty bin id", func(t *testing.T) {
		uc := usecase.NewAuthUseCase(&MockUserRepository{}, zap.NewNop())

		assert.ErrorIs(t, uc.SaveRouteBin(ctx, 3, " "), errors.ErrInvalidRequest)
	})

	t.Run("nothing saved", func(t *testing.T) {
		repo := &MockUserRepository{}
		uc := usecase.NewAuthUseCase(repo, zap.NewNop())
		repo.On("GetByID", ctx, int64(4)).Return(&domain.User{ID: 4}, nil)

		saved, err := uc.SavedRouteBin(ctx, 4)
		require.NoError(t, err)
		assert.Nil(t, saved)
	})

	t.Run("stale session", func(t *testing.T) {
		repo := &MockUserRepository{}
		uc := usecase.NewAuthUseCase(repo, zap.NewNop())
		repo.On("GetByID", ctx, int64(5)).Return(nil, domain.ErrUserNotFound)

		_, err := uc.SavedRouteBin(ctx, 5)
		assert.ErrorIs(t, err, errors.ErrUnauthorized)
	})
}
