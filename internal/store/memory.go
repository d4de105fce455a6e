package store

import "sync"

// MemoryStore is an in-memory Store used by tests in place of real disk
// I/O.
type MemoryStore struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{files: make(map[string][]byte)}
}

// Exists reports whether audio for the given text has been written.
func (s *MemoryStore) Exists(text string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.files[text]
	return ok
}

// Write stores audio for the given text, replacing any previous value.
func (s *MemoryStore) Write(text string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(data))
	copy(buf, data)
	s.files[text] = buf
	return nil
}

// Count returns the number of stored entries.
func (s *MemoryStore) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.files), nil
}

// Get returns the stored audio for the given text, if any.
func (s *MemoryStore) Get(text string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.files[text]
	return data, ok
}

// Ensure MemoryStore implements the Store interface
var _ Store = (*MemoryStore)(nil)
