package store

import (
	"encoding/json"
	"sync"
)

// MemoryStore keeps slots in process memory. Values round-trip through JSON
// so callers see the same copy semantics as the durable store, and the two
// are interchangeable behind the Store interface.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (s *MemoryStore) Load(name string, dest any) error {
	s.mu.RLock()
	payload, ok := s.slots[name]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	decodeSlot(payload, dest)
	return nil
}

func (s *MemoryStore) Save(name string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.slots[name] = payload
	s.mu.Unlock()
	return nil
}
