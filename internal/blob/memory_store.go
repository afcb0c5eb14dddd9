package blob

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

type memoryBlob struct {
	contentType string
	data        []byte
}

// MemoryStore implements Store in memory and serves blobs itself.
type MemoryStore struct {
	baseURL string

	mu    sync.RWMutex
	blobs map[string]memoryBlob
}

// NewMemoryStore creates an in-memory store whose URLs point at
// baseURL + "/blobs/{id}".
func NewMemoryStore(baseURL string) *MemoryStore {
	return &MemoryStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		blobs:   make(map[string]memoryBlob),
	}
}

func (s *MemoryStore) Put(ctx context.Context, id, contentType string, body io.Reader, size int64) error {
	data, err := io.ReadAll(io.LimitReader(body, size))
	if err != nil {
		return fmt.Errorf("failed to read blob body: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.blobs[id]; exists {
		return ErrAlreadyExists
	}
	s.blobs[id] = memoryBlob{contentType: contentType, data: data}
	return nil
}

func (s *MemoryStore) URL(ctx context.Context, id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.blobs[id]; !ok {
		return "", ErrNotFound
	}
	return s.baseURL + "/blobs/" + id, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, id)
	return nil
}

// Exists reports whether a blob is stored under id.
func (s *MemoryStore) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.blobs[id]
	return ok
}

// ServeHTTP serves GET /blobs/{id}.
func (s *MemoryStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.RLock()
	b, ok := s.blobs[id]
	s.mu.RUnlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", b.contentType)
	_, _ = w.Write(b.data)
}
