package engine

import (
	"errors"
	"sync"
)

// ErrNoSavedWorld is returned when loading before anything has been saved
var ErrNoSavedWorld = errors.New("no saved world")

// RecordStore keeps the input record of a saved session. Replaying the
// record from a fresh engine rebuilds the saved world.
type RecordStore interface {
	Save(record string) error
	Load() (string, error)
}

// MemoryStore is a RecordStore that lives as long as the process
type MemoryStore struct {
	mu     sync.Mutex
	record string
	saved  bool
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save replaces the stored record
func (s *MemoryStore) Save(record string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = record
	s.saved = true
	return nil
}

// Load returns the stored record or ErrNoSavedWorld
func (s *MemoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.saved {
		return "", ErrNoSavedWorld
	}
	return s.record, nil
}
