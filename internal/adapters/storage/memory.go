package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"

	"github.com/google/uuid"
)

// MemoryChunkStore is a stateful in-memory ChunkStore for tests that need
// real put/get/list/delete behavior rather than per-call expectations.
type MemoryChunkStore struct {
	mu     sync.Mutex
	chunks map[uuid.UUID]map[int][]byte
}

// NewMemoryChunkStore creates an empty MemoryChunkStore
func NewMemoryChunkStore() *MemoryChunkStore {
	return &MemoryChunkStore{chunks: make(map[uuid.UUID]map[int][]byte)}
}

func (s *MemoryChunkStore) Put(ctx context.Context, blobID uuid.UUID, sequence int, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	group, ok := s.chunks[blobID]
	if !ok {
		group = make(map[int][]byte)
		s.chunks[blobID] = group
	}
	if _, dup := group[sequence]; dup {
		return fmt.Errorf("chunk %s/%d: %w", blobID, sequence, domain.ErrAlreadyExists)
	}

	// The caller reuses its window buffer between writes.
	own := make([]byte, len(payload))
	copy(own, payload)
	group[sequence] = own
	return nil
}

func (s *MemoryChunkStore) Get(ctx context.Context, blobID uuid.UUID, sequence int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, ok := s.chunks[blobID][sequence]
	if !ok {
		return nil, domain.ErrChunkNotFound
	}
	return payload, nil
}

func (s *MemoryChunkStore) ListSequences(ctx context.Context, blobID uuid.UUID) ([]domain.ChunkRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	refs := make([]domain.ChunkRef, 0, len(s.chunks[blobID]))
	for sequence, payload := range s.chunks[blobID] {
		refs = append(refs, domain.ChunkRef{Sequence: sequence, Size: int64(len(payload))})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Sequence < refs[j].Sequence })
	return refs, nil
}

func (s *MemoryChunkStore) DeleteAll(ctx context.Context, blobID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := int64(len(s.chunks[blobID]))
	delete(s.chunks, blobID)
	return removed, nil
}

func (s *MemoryChunkStore) ListBlobIDs(ctx context.Context) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]uuid.UUID, 0, len(s.chunks))
	for id := range s.chunks {
		ids = append(ids, id)
	}
	return ids, nil
}

// Drop removes a single chunk behind the store's back, simulating storage
// losing data after finalize.
func (s *MemoryChunkStore) Drop(blobID uuid.UUID, sequence int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.chunks[blobID], sequence)
}
