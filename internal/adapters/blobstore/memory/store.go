package memory

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"sync"

	"paws-sync/internal/ports/blobstore"
)

const DefaultBaseURL = "mem://blobs"

// Store guarda blobs en memoria. Las URLs son baseURL + "/" + path.
type Store struct {
	mu      sync.RWMutex
	objects map[string][]byte
	baseURL string
}

func NewStore(baseURL string) *Store {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Store{
		objects: make(map[string][]byte),
		baseURL: baseURL,
	}
}

func (s *Store) Put(ctx context.Context, path string, r io.Reader) error {
	p, err := blobstore.CleanPath(path)
	if err != nil {
		return err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[p] = b
	return nil
}

func (s *Store) Open(_ context.Context, path string) (io.ReadCloser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.objects[path]
	if !ok {
		return nil, blobstore.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (s *Store) DownloadURL(_ context.Context, path string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.objects[path]; !ok {
		return "", blobstore.ErrNotFound
	}
	return s.baseURL + "/" + path, nil
}

func (s *Store) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.objects[path]; !ok {
		return blobstore.ErrNotFound
	}
	delete(s.objects, path)
	return nil
}

func (s *Store) PathFromURL(url string) (string, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(url), s.baseURL+"/")
	if !ok {
		return "", blobstore.ErrForeignURL
	}
	return blobstore.CleanPath(rest)
}

// Paths lista lo guardado, ordenado. Útil en tests.
func (s *Store) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.objects))
	for p := range s.objects {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
