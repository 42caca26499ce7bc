package preference

import (
	"context"
	"sync"

	"coffee-scout/internal/mood"
)

// MemoryStore keeps the preference in process memory, for tests and dev.
type MemoryStore struct {
	mu  sync.RWMutex
	raw string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (mood.Mood, bool, error) {
	s.mu.RLock()
	raw := s.raw
	s.mu.RUnlock()
	if raw == "" {
		return "", false, nil
	}
	return decodeState(raw)
}

func (s *MemoryStore) Save(_ context.Context, m mood.Mood) error {
	raw, err := encodeState(m)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.raw = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

var _ Store = (*MemoryStore)(nil)
