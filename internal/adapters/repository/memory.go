package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/port"

	"github.com/google/uuid"
)

// MemoryBlobRepository is a stateful in-memory BlobRepository for tests
// that exercise whole pipelines instead of single calls.
type MemoryBlobRepository struct {
	mu    sync.Mutex
	blobs map[uuid.UUID]domain.Blob
}

func NewMemoryBlobRepository() *MemoryBlobRepository {
	return &MemoryBlobRepository{blobs: make(map[uuid.UUID]domain.Blob)}
}

func (r *MemoryBlobRepository) Create(ctx context.Context, blob domain.Blob) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.blobs[blob.ID]; exists {
		return fmt.Errorf("blob %s: %w", blob.ID, domain.ErrAlreadyExists)
	}
	now := time.Now().UTC()
	if blob.CreatedAt.IsZero() {
		blob.CreatedAt = now
	}
	if blob.UpdatedAt.IsZero() {
		blob.UpdatedAt = now
	}
	r.blobs[blob.ID] = blob
	return nil
}

func (r *MemoryBlobRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Blob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	blob, ok := r.blobs[id]
	if !ok {
		return nil, domain.ErrBlobNotFound
	}
	return &blob, nil
}

func (r *MemoryBlobRepository) Finalize(ctx context.Context, id uuid.UUID, sizeBytes int64, chunkSize int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	blob, ok := r.blobs[id]
	if !ok {
		return domain.ErrBlobNotFound
	}
	if blob.Status == domain.BlobStatusComplete {
		return domain.ErrAlreadyFinalized
	}
	blob.Status = domain.BlobStatusComplete
	blob.SizeBytes = sizeBytes
	blob.ChunkSize = chunkSize
	blob.UpdatedAt = time.Now().UTC()
	r.blobs[id] = blob
	return nil
}

func (r *MemoryBlobRepository) Touch(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	blob, ok := r.blobs[id]
	if !ok || blob.Status != domain.BlobStatusPending {
		return nil
	}
	blob.UpdatedAt = time.Now().UTC()
	r.blobs[id] = blob
	return nil
}

func (r *MemoryBlobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.blobs, id)
	return nil
}

func (r *MemoryBlobRepository) FindStalePending(ctx context.Context, olderThan time.Time) ([]domain.Blob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var stale []domain.Blob
	for _, blob := range r.blobs {
		if blob.Status == domain.BlobStatusPending && blob.UpdatedAt.Before(olderThan) {
			stale = append(stale, blob)
		}
	}
	return stale, nil
}

// SetUpdatedAt backdates a record so sweep tests can age an upload.
func (r *MemoryBlobRepository) SetUpdatedAt(id uuid.UUID, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	blob, ok := r.blobs[id]
	if !ok {
		return
	}
	blob.UpdatedAt = at
	r.blobs[id] = blob
}

// MemoryAssetRepository is a stateful in-memory AssetRepository keeping
// insertion order, like the SQL one does via created_at.
type MemoryAssetRepository struct {
	mu     sync.Mutex
	assets []domain.Asset
}

func NewMemoryAssetRepository() *MemoryAssetRepository {
	return &MemoryAssetRepository{}
}

func (r *MemoryAssetRepository) Create(ctx context.Context, asset domain.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.assets {
		if existing.ID == asset.ID {
			return fmt.Errorf("asset %s: %w", asset.ID, domain.ErrAlreadyExists)
		}
	}
	if asset.CreatedAt.IsZero() {
		asset.CreatedAt = time.Now().UTC()
	}
	r.assets = append(r.assets, asset)
	return nil
}

func (r *MemoryAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, asset := range r.assets {
		if asset.ID == id {
			found := asset
			return &found, nil
		}
	}
	return nil, domain.ErrAssetNotFound
}

func (r *MemoryAssetRepository) List(ctx context.Context) ([]domain.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Asset, len(r.assets))
	copy(out, r.assets)
	return out, nil
}

func (r *MemoryAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, asset := range r.assets {
		if asset.ID == id {
			r.assets = append(r.assets[:i], r.assets[i+1:]...)
			return nil
		}
	}
	return domain.ErrAssetNotFound
}

// MemoryUnitOfWork glues the in-memory repositories together. Execute
// runs the function directly: the fakes have no transaction semantics.
type MemoryUnitOfWork struct {
	blobRepo  *MemoryBlobRepository
	assetRepo *MemoryAssetRepository
}

func NewMemoryUnitOfWork() *MemoryUnitOfWork {
	return &MemoryUnitOfWork{
		blobRepo:  NewMemoryBlobRepository(),
		assetRepo: NewMemoryAssetRepository(),
	}
}

func (m *MemoryUnitOfWork) BlobRepo() port.BlobRepository {
	return m.blobRepo
}

func (m *MemoryUnitOfWork) AssetRepo() port.AssetRepository {
	return m.assetRepo
}

func (m *MemoryUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	return fn(m)
}

func (m *MemoryUnitOfWork) GetBlobRepo() *MemoryBlobRepository {
	return m.blobRepo
}

func (m *MemoryUnitOfWork) GetAssetRepo() *MemoryAssetRepository {
	return m.assetRepo
}
