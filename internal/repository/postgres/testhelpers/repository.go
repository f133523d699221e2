package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/runanywhere/runanywhere/internal/domain/repository"
	"github.com/runanywhere/runanywhere/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// MigratedDB wraps the test connection and applies the embedded migrations
func MigratedDB(db *sqlx.DB, logger *zap.Logger) (*postgres.DB, error) {
	pgDB := NewDBForTest(db, logger)
	if err := pgDB.Migrate(); err != nil {
		return nil, err
	}
	return pgDB, nil
}

// NewUserRepositoryForTest creates a user repository with test database and logger
func NewUserRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.UserRepository {
	return postgres.NewUserRepository(NewDBForTest(db, logger))
}

// NewRouteBinRepositoryForTest creates a route bin repository with test database and logger
func NewRouteBinRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.RouteBinRepository {
	return postgres.NewRouteBinRepository(NewDBForTest(db, logger))
}
