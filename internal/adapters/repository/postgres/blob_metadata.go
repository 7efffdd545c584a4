package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/port"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type sqlBlobRepository struct {
	db SQLQuerier
}

// NewSqlBlobRepository creates sqlBlobRepository that implements port.BlobRepository
func NewSqlBlobRepository(db SQLQuerier) port.BlobRepository {
	return &sqlBlobRepository{
		db: db,
	}
}

// Create inserts a new blob registry record
func (s *sqlBlobRepository) Create(ctx context.Context, blob domain.Blob) error {
	tags, err := json.Marshal(blob.Tags)
	if err != nil {
		return fmt.Errorf("error encoding blob tags: %w", err)
	}

	query := `INSERT INTO blob_metadata (id, content_type, original_name, tags, size_bytes, chunk_size, status)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = s.db.ExecContext(ctx, query, blob.ID, blob.ContentType, blob.OriginalName, tags, blob.SizeBytes, blob.ChunkSize, blob.Status)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return fmt.Errorf("blob %s: %w", blob.ID, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("error inserting blob metadata: %w", err)
	}
	return nil
}

// FindByID finds a blob record by id
func (s *sqlBlobRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Blob, error) {
	query := `SELECT id, content_type, original_name, tags, size_bytes, chunk_size, status, created_at, updated_at
              FROM blob_metadata
              WHERE id = $1`

	var dbBlob dbBlobMetadata
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&dbBlob.ID,
		&dbBlob.ContentType,
		&dbBlob.OriginalName,
		&dbBlob.Tags,
		&dbBlob.SizeBytes,
		&dbBlob.ChunkSize,
		&dbBlob.Status,
		&dbBlob.CreatedAt,
		&dbBlob.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBlobNotFound
		}
		return nil, err
	}

	return dbBlob.ToDomain()
}

// Finalize flips a pending record to complete and fixes its size. The
// update is the single linearization point that makes the blob readable.
func (s *sqlBlobRepository) Finalize(ctx context.Context, id uuid.UUID, sizeBytes int64, chunkSize int) error {
	query := `UPDATE blob_metadata
              SET status = $1, size_bytes = $2, chunk_size = $3, updated_at = now()
              WHERE id = $4 AND status = $5`

	result, err := s.db.ExecContext(ctx, query, domain.BlobStatusComplete, sizeBytes, chunkSize, id, domain.BlobStatusPending)
	if err != nil {
		return fmt.Errorf("error finalizing blob metadata: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}

	if rowsAffected == 0 {
		// Either the record does not exist or it is already complete.
		var status string
		probeErr := s.db.QueryRowContext(ctx, `SELECT status FROM blob_metadata WHERE id = $1`, id).Scan(&status)
		if errors.Is(probeErr, sql.ErrNoRows) {
			return domain.ErrBlobNotFound
		}
		if probeErr != nil {
			return probeErr
		}
		return domain.ErrAlreadyFinalized
	}

	return nil
}

// Touch refreshes updated_at on a pending record. Complete and absent
// records are left alone: the sweep only looks at pending ones.
func (s *sqlBlobRepository) Touch(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE blob_metadata
              SET updated_at = now()
              WHERE id = $1 AND status = $2`

	if _, err := s.db.ExecContext(ctx, query, id, domain.BlobStatusPending); err != nil {
		return fmt.Errorf("error touching blob metadata: %w", err)
	}
	return nil
}

// Delete removes a blob record. Absent records are not an error, which
// keeps blob deletion retry-safe.
func (s *sqlBlobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM blob_metadata WHERE id = $1`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("error deleting blob metadata: %w", err)
	}
	return nil
}

// FindStalePending finds pending uploads not touched since olderThan
func (s *sqlBlobRepository) FindStalePending(ctx context.Context, olderThan time.Time) ([]domain.Blob, error) {
	query := `SELECT id, content_type, original_name, tags, size_bytes, chunk_size, status, created_at, updated_at
              FROM blob_metadata
              WHERE status = $1 AND updated_at < $2`

	rows, err := s.db.QueryContext(ctx, query, domain.BlobStatusPending, olderThan)
	if err != nil {
		return nil, fmt.Errorf("error querying stale blobs: %w", err)
	}
	defer rows.Close()

	var blobs []domain.Blob
	for rows.Next() {
		var dbBlob dbBlobMetadata
		if err := rows.Scan(
			&dbBlob.ID,
			&dbBlob.ContentType,
			&dbBlob.OriginalName,
			&dbBlob.Tags,
			&dbBlob.SizeBytes,
			&dbBlob.ChunkSize,
			&dbBlob.Status,
			&dbBlob.CreatedAt,
			&dbBlob.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning blob metadata: %w", err)
		}

		blob, err := dbBlob.ToDomain()
		if err != nil {
			return nil, err
		}
		blobs = append(blobs, *blob)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blobs: %w", err)
	}

	return blobs, nil
}

// dbBlobMetadata represents a blob record in DB
type dbBlobMetadata struct {
	ID           uuid.UUID `db:"id"`
	ContentType  string    `db:"content_type"`
	OriginalName string    `db:"original_name"`
	Tags         []byte    `db:"tags"`
	SizeBytes    int64     `db:"size_bytes"`
	ChunkSize    int       `db:"chunk_size"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// ToDomain converts to domain.Blob
func (b *dbBlobMetadata) ToDomain() (*domain.Blob, error) {
	var tags map[string]string
	if len(b.Tags) > 0 {
		if err := json.Unmarshal(b.Tags, &tags); err != nil {
			return nil, fmt.Errorf("error decoding blob tags: %w", err)
		}
	}

	return &domain.Blob{
		ID:           b.ID,
		ContentType:  b.ContentType,
		OriginalName: b.OriginalName,
		Tags:         tags,
		SizeBytes:    b.SizeBytes,
		ChunkSize:    b.ChunkSize,
		Status:       domain.BlobStatus(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}, nil
}
