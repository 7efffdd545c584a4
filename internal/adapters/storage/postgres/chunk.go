package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/port"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SQLQuerier is the subset of database/sql methods the chunk store runs
// queries through. Both *sql.DB and *sql.Tx satisfy it.
type SQLQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type sqlChunkStore struct {
	db SQLQuerier
}

// NewSqlChunkStore creates sqlChunkStore that implements port.ChunkStore,
// backed by the blob_chunk table keyed (blob_id, sequence_number).
func NewSqlChunkStore(db SQLQuerier) port.ChunkStore {
	return &sqlChunkStore{
		db: db,
	}
}

// Put writes one chunk. A key is written at most once; hitting the
// primary key means the caller re-sent a sequence number.
func (s *sqlChunkStore) Put(ctx context.Context, blobID uuid.UUID, sequence int, payload []byte) error {
	query := `INSERT INTO blob_chunk (blob_id, sequence_number, payload)
              VALUES ($1, $2, $3)`

	_, err := s.db.ExecContext(ctx, query, blobID, sequence, payload)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return fmt.Errorf("chunk %s/%d: %w", blobID, sequence, domain.ErrAlreadyExists)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("chunk %s/%d: %w", blobID, sequence, domain.ErrTimeout)
		}
		return fmt.Errorf("chunk %s/%d: %w: %w", blobID, sequence, domain.ErrChunkWrite, err)
	}
	return nil
}

// Get returns one chunk payload
func (s *sqlChunkStore) Get(ctx context.Context, blobID uuid.UUID, sequence int) ([]byte, error) {
	query := `SELECT payload FROM blob_chunk
              WHERE blob_id = $1 AND sequence_number = $2`

	var payload []byte
	err := s.db.QueryRowContext(ctx, query, blobID, sequence).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrChunkNotFound
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("chunk %s/%d: %w", blobID, sequence, domain.ErrTimeout)
		}
		return nil, fmt.Errorf("error reading chunk: %w", err)
	}
	return payload, nil
}

// ListSequences returns the chunks present for a blob in ascending
// sequence order, with payload sizes but without the payloads.
func (s *sqlChunkStore) ListSequences(ctx context.Context, blobID uuid.UUID) ([]domain.ChunkRef, error) {
	query := `SELECT sequence_number, octet_length(payload) FROM blob_chunk
              WHERE blob_id = $1
              ORDER BY sequence_number`

	rows, err := s.db.QueryContext(ctx, query, blobID)
	if err != nil {
		return nil, fmt.Errorf("error listing chunks: %w", err)
	}
	defer rows.Close()

	var refs []domain.ChunkRef
	for rows.Next() {
		var ref domain.ChunkRef
		if err := rows.Scan(&ref.Sequence, &ref.Size); err != nil {
			return nil, fmt.Errorf("error scanning chunk row: %w", err)
		}
		refs = append(refs, ref)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chunks: %w", err)
	}

	return refs, nil
}

// DeleteAll removes every chunk of a blob and is idempotent: deleting a
// blob with no chunks returns 0 and no error.
func (s *sqlChunkStore) DeleteAll(ctx context.Context, blobID uuid.UUID) (int64, error) {
	query := `DELETE FROM blob_chunk WHERE blob_id = $1`

	result, err := s.db.ExecContext(ctx, query, blobID)
	if err != nil {
		return 0, fmt.Errorf("error deleting chunks: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error checking rows affected: %w", err)
	}
	return removed, nil
}

// ListBlobIDs returns the distinct blob ids that currently own chunks
func (s *sqlChunkStore) ListBlobIDs(ctx context.Context) ([]uuid.UUID, error) {
	query := `SELECT DISTINCT blob_id FROM blob_chunk`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing chunk owners: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning blob id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blob ids: %w", err)
	}

	return ids, nil
}
