package repository

import (
	"context"
	"sync"

	domainrepo "portal/internal/repository"
)

// インメモリ実装。テストとDB無し起動用。
type KVMemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewKVMemoryStore() *KVMemoryStore {
	return &KVMemoryStore{data: map[string][]byte{}}
}

func (s *KVMemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, domainrepo.ErrNotFound
	}

	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, nil
}

func (s *KVMemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	s.data[key] = cp
	return nil
}

func (s *KVMemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

var _ domainrepo.KVStore = (*KVMemoryStore)(nil)
