package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/config"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Adapter is a ChunkStore backed by object storage: one object per chunk
// under chunks/<blobID>/<sequence>. Sequence numbers are zero padded so
// listing order matches sequence order.
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

const chunkKeyRoot = "chunks/"

func chunkPrefix(blobID uuid.UUID) string {
	return fmt.Sprintf("%s%s/", chunkKeyRoot, blobID)
}

func chunkKey(blobID uuid.UUID, sequence int) string {
	return fmt.Sprintf("%s%010d", chunkPrefix(blobID), sequence)
}

// Put writes one chunk object
func (a *Adapter) Put(ctx context.Context, blobID uuid.UUID, sequence int, payload []byte) error {
	_, err := a.client.PutObject(
		ctx,
		a.config.BucketName,
		chunkKey(blobID, sequence),
		bytes.NewReader(payload),
		int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"},
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("chunk %s/%d: %w", blobID, sequence, domain.ErrTimeout)
		}
		return fmt.Errorf("chunk %s/%d: %w: %w", blobID, sequence, domain.ErrChunkWrite, err)
	}
	return nil
}

// Get returns one chunk payload
func (a *Adapter) Get(ctx context.Context, blobID uuid.UUID, sequence int) ([]byte, error) {
	object, err := a.client.GetObject(ctx, a.config.BucketName, chunkKey(blobID, sequence), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get chunk object: %w", err)
	}
	defer object.Close()

	payload, err := io.ReadAll(object)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, domain.ErrChunkNotFound
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("chunk %s/%d: %w", blobID, sequence, domain.ErrTimeout)
		}
		return nil, fmt.Errorf("failed to read chunk object: %w", err)
	}
	return payload, nil
}

// ListSequences lists the chunk objects under the blob's prefix
func (a *Adapter) ListSequences(ctx context.Context, blobID uuid.UUID) ([]domain.ChunkRef, error) {
	prefix := chunkPrefix(blobID)

	var refs []domain.ChunkRef
	for object := range a.client.ListObjects(ctx, a.config.BucketName, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list chunk objects: %w", object.Err)
		}
		sequence, err := strconv.Atoi(strings.TrimPrefix(object.Key, prefix))
		if err != nil {
			// Not a chunk object; something else shares the bucket.
			continue
		}
		refs = append(refs, domain.ChunkRef{Sequence: sequence, Size: object.Size})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Sequence < refs[j].Sequence })
	return refs, nil
}

// DeleteAll removes every chunk object of the blob. Removing an object
// that is already gone is not an error, so the operation is idempotent.
func (a *Adapter) DeleteAll(ctx context.Context, blobID uuid.UUID) (int64, error) {
	prefix := chunkPrefix(blobID)

	var removed int64
	for object := range a.client.ListObjects(ctx, a.config.BucketName, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if object.Err != nil {
			return removed, fmt.Errorf("failed to list chunk objects: %w", object.Err)
		}
		if err := a.client.RemoveObject(ctx, a.config.BucketName, object.Key, minio.RemoveObjectOptions{}); err != nil {
			return removed, fmt.Errorf("failed to delete chunk object %s: %w", object.Key, err)
		}
		removed++
	}

	if removed > 0 {
		a.logger.Info("chunk objects deleted",
			slog.String("blob_id", blobID.String()),
			slog.Int64("removed", removed))
	}
	return removed, nil
}

// ListBlobIDs returns the distinct blob ids that currently own chunk
// objects, derived from the common prefixes one level under chunks/.
func (a *Adapter) ListBlobIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for object := range a.client.ListObjects(ctx, a.config.BucketName, minio.ListObjectsOptions{Prefix: chunkKeyRoot, Recursive: false}) {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list chunk prefixes: %w", object.Err)
		}
		trimmed := strings.TrimSuffix(strings.TrimPrefix(object.Key, chunkKeyRoot), "/")
		blobID, err := uuid.Parse(trimmed)
		if err != nil {
			continue
		}
		ids = append(ids, blobID)
	}
	return ids, nil
}
