package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/runanywhere/runanywhere/internal/domain"
	"github.com/runanywhere/runanywhere/internal/domain/repository"
	"github.com/runanywhere/runanywhere/internal/repository/postgres/testhelpers"
)

// UserRepositorySuite tests the user repository with real database
type UserRepositorySuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.UserRepository
	ctx    context.Context
}

func (s *UserRepositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	_, err := testhelpers.MigratedDB(s.testDB.DB, s.testDB.Logger)
	s.Require().NoError(err, "Failed to apply migrations")

	s.repo = testhelpers.NewUserRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *UserRepositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *UserRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
}

// ============================================================================
// Test Create
// ============================================================================

func (s *UserRepositorySuite) TestCreate_Success() {
	user, err := s.repo.Create(s.ctx, "alice", "hash-1")
	s.Require().NoError(err)
	s.NotZero(user.ID)
	s.Equal("alice", user.Username)
	s.Equal("hash-1", user.PasswordHash)
	s.Nil(user.RouteBin)
	s.False(user.CreatedAt.IsZero())
}

func (s *UserRepositorySuite) TestCreate_Duplicate() {
	_, err := s.repo.Create(s.ctx, "alice", "hash-1")
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, "alice", "hash-2")
	s.ErrorIs(err, domain.ErrUserExists)
}

// ============================================================================
// Test lookups
// ============================================================================

func (s *UserRepositorySuite) TestGetByUsername() {
	created, err := s.repo.Create(s.ctx, "bob", "hash")
	s.Require().NoError(err)

	user, err := s.repo.GetByUsername(s.ctx, "bob")
	s.Require().NoError(err)
	s.Equal(created.ID, user.ID)

	_, err = s.repo.GetByUsername(s.ctx, "nobody")
	s.ErrorIs(err, domain.ErrUserNotFound)
}

func (s *UserRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, 999999)
	s.ErrorIs(err, domain.ErrUserNotFound)
}

func (s *UserRepositorySuite) TestExists() {
	exists, err := s.repo.Exists(s.ctx, "carol")
	s.Require().NoError(err)
	s.False(exists)

	_, err = s.repo.Create(s.ctx, "carol", "hash")
	s.Require().NoError(err)

	exists, err = s.repo.Exists(s.ctx, "carol")
	s.Require().NoError(err)
	s.True(exists)
}

// ============================================================================
// Test UpdateRouteBin
// ============================================================================

func (s *UserRepositorySuite) TestUpdateRouteBin() {
	user, err := s.repo.Create(s.ctx, "dave", "hash")
	s.Require().NoError(err)

	s.Require().NoError(s.repo.UpdateRouteBin(s.ctx, user.ID, "bin-42"))

	reloaded, err := s.repo.GetByID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Require().NotNil(reloaded.RouteBin)
	s.Equal("bin-42", *reloaded.RouteBin)
}

func (s *UserRepositorySuite) TestUpdateRouteBin_UnknownUser() {
	err := s.repo.UpdateRouteBin(s.ctx, 999999, "bin")
	s.ErrorIs(err, domain.ErrUserNotFound)
}

func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}
