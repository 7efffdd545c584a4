package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/port"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type sqlAssetRepository struct {
	db SQLQuerier
}

// NewSqlAssetRepository creates sqlAssetRepository that implements port.AssetRepository
func NewSqlAssetRepository(db SQLQuerier) port.AssetRepository {
	return &sqlAssetRepository{
		db: db,
	}
}

// Create inserts a new catalog entry
func (s *sqlAssetRepository) Create(ctx context.Context, asset domain.Asset) error {
	query := `INSERT INTO assets (id, title, artist, audio_blob_id, image_blob_id, duration_seconds)
              VALUES ($1, $2, $3, $4, $5, $6)`

	var duration sql.NullFloat64
	if asset.DurationSeconds != nil {
		duration = sql.NullFloat64{Float64: *asset.DurationSeconds, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query, asset.ID, asset.Title, asset.Artist, asset.AudioBlobID, asset.ImageBlobID, duration)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return fmt.Errorf("asset %s: %w", asset.ID, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("error inserting asset: %w", err)
	}
	return nil
}

// FindByID finds an asset by id
func (s *sqlAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	query := `SELECT id, title, artist, audio_blob_id, image_blob_id, duration_seconds, created_at
              FROM assets
              WHERE id = $1`

	var row dbAsset
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&row.ID,
		&row.Title,
		&row.Artist,
		&row.AudioBlobID,
		&row.ImageBlobID,
		&row.DurationSeconds,
		&row.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, err
	}

	return row.ToDomain(), nil
}

// List returns all assets ordered by creation time
func (s *sqlAssetRepository) List(ctx context.Context) ([]domain.Asset, error) {
	query := `SELECT id, title, artist, audio_blob_id, image_blob_id, duration_seconds, created_at
              FROM assets
              ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying assets: %w", err)
	}
	defer rows.Close()

	var assets []domain.Asset
	for rows.Next() {
		var row dbAsset
		if err := rows.Scan(
			&row.ID,
			&row.Title,
			&row.Artist,
			&row.AudioBlobID,
			&row.ImageBlobID,
			&row.DurationSeconds,
			&row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning asset: %w", err)
		}
		assets = append(assets, *row.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assets: %w", err)
	}

	return assets, nil
}

// Delete removes an asset by id
func (s *sqlAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM assets WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting asset: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrAssetNotFound
	}

	return nil
}

// dbAsset represents an asset row in DB
type dbAsset struct {
	ID              uuid.UUID       `db:"id"`
	Title           string          `db:"title"`
	Artist          string          `db:"artist"`
	AudioBlobID     uuid.UUID       `db:"audio_blob_id"`
	ImageBlobID     uuid.UUID       `db:"image_blob_id"`
	DurationSeconds sql.NullFloat64 `db:"duration_seconds"`
	CreatedAt       time.Time       `db:"created_at"`
}

// ToDomain converts to domain.Asset
func (a *dbAsset) ToDomain() *domain.Asset {
	asset := &domain.Asset{
		ID:          a.ID,
		Title:       a.Title,
		Artist:      a.Artist,
		AudioBlobID: a.AudioBlobID,
		ImageBlobID: a.ImageBlobID,
		CreatedAt:   a.CreatedAt,
	}
	if a.DurationSeconds.Valid {
		d := a.DurationSeconds.Float64
		asset.DurationSeconds = &d
	}
	return asset
}
