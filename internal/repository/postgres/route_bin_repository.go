package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/runanywhere/runanywhere/internal/domain"
	"github.com/runanywhere/runanywhere/internal/domain/repository"
)

const routeBinColumns = "id, segments, created_at, updated_at"

type routeBinRow struct {
	ID        uuid.UUID `db:"id"`
	Segments  []byte    `db:"segments"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (row *routeBinRow) toDomain() (*domain.RouteBin, error) {
	segments := []domain.RouteSegment{}
	if err := json.Unmarshal(row.Segments, &segments); err != nil {
		return nil, fmt.Errorf("unmarshal segments: %w", err)
	}

	return &domain.RouteBin{
		ID:        row.ID,
		Segments:  segments,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

type routeBinRepository struct {
	db *DB
}

func NewRouteBinRepository(db *DB) repository.RouteBinRepository {
	return &routeBinRepository{db: db}
}

func (r *routeBinRepository) Create(ctx context.Context, segments []domain.RouteSegment) (*domain.RouteBin, error) {
	if segments == nil {
		segments = []domain.RouteSegment{}
	}

	data, err := json.Marshal(segments)
	if err != nil {
		return nil, fmt.Errorf("marshal segments: %w", err)
	}

	query := `INSERT INTO route_bins (id, segments) VALUES ($1, $2::jsonb) RETURNING ` + routeBinColumns

	var row routeBinRow
	if err := r.db.GetContext(ctx, &row, query, uuid.New(), string(data)); err != nil {
		r.db.logger.Error("Failed to create route bin", zap.Error(err))
		return nil, fmt.Errorf("create route bin: %w", err)
	}

	return row.toDomain()
}

func (r *routeBinRepository) Get(ctx context.Context, id uuid.UUID) (*domain.RouteBin, error) {
	query := `SELECT ` + routeBinColumns + ` FROM route_bins WHERE id = $1`

	var row routeBinRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRouteBinNotFound
		}
		return nil, fmt.Errorf("get route bin: %w", err)
	}

	return row.toDomain()
}

// Append дописывает сегмент одним UPDATE, без read-modify-write
func (r *routeBinRepository) Append(ctx context.Context, id uuid.UUID, segment domain.RouteSegment) (*domain.RouteBin, error) {
	data, err := json.Marshal([]domain.RouteSegment{segment})
	if err != nil {
		return nil, fmt.Errorf("marshal segment: %w", err)
	}

	query := `UPDATE route_bins
		SET segments = segments || $2::jsonb, updated_at = now()
		WHERE id = $1
		RETURNING ` + routeBinColumns

	var row routeBinRow
	if err := r.db.GetContext(ctx, &row, query, id, string(data)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRouteBinNotFound
		}
		r.db.logger.Error("Failed to append to route bin", zap.String("bin_id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("append to route bin: %w", err)
	}

	return row.toDomain()
}
