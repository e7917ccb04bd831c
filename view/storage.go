package view

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Storage is the durable key-value interface persistent stores write
// through. Access is synchronous; single-threaded use is assumed.
type Storage interface {
	// Get returns the stored value and true, or "" and false when absent.
	Get(key string) (string, bool)

	// Set writes a value, replacing any previous entry.
	Set(key, value string)
}

// MemoryStorage is an in-process Storage with no durability. It is the
// default backing for a Runtime constructed without explicit storage.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (s *MemoryStorage) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStorage) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Len returns the number of stored entries.
func (s *MemoryStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// FileStorage is a Storage persisted as a JSON snapshot, rewritten on every
// Set. Write failures do not interrupt the caller; the first one is kept
// and reported by Err.
type FileStorage struct {
	mu       sync.Mutex
	path     string
	values   map[string]string
	writeErr error
}

// NewFileStorage opens or creates file-backed storage at path. A missing
// file starts empty; an unreadable or corrupt file is an error.
func NewFileStorage(path string) (*FileStorage, error) {
	s := &FileStorage{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("failed to parse storage file: %w", err)
	}
	return s, nil
}

func (s *FileStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *FileStorage) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	if err := s.flushLocked(); err != nil && s.writeErr == nil {
		s.writeErr = err
	}
}

// Err returns the first write failure encountered, if any.
func (s *FileStorage) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeErr
}

func (s *FileStorage) flushLocked() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal storage: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write storage file: %w", err)
	}
	return nil
}
