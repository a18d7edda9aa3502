package media

import (
	"bytes"
	"context"
	"io"
	"sync"
)

// MemStore is an in-memory Store. Tests use it to observe exactly which
// files exist after an operation.
type MemStore struct {
	mutex sync.RWMutex
	files map[string][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{files: make(map[string][]byte)}
}

// Save buffers the file contents under name.
func (s *MemStore) Save(ctx context.Context, name string, r io.Reader, size int64) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.files[name] = data
	return nil
}

// Delete removes the file; a missing file is success.
func (s *MemStore) Delete(ctx context.Context, name string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.files, name)
	return nil
}

// Exists reports whether a file with the given name is present.
func (s *MemStore) Exists(ctx context.Context, name string) (bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	_, ok := s.files[name]
	return ok, nil
}

// Read returns the stored contents, for assertions.
func (s *MemStore) Read(name string) ([]byte, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	data, ok := s.files[name]
	if !ok {
		return nil, false
	}
	return bytes.Clone(data), true
}

// Len returns how many files are stored.
func (s *MemStore) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.files)
}
