package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"paws-sync/internal/ports/blobstore"

	"github.com/gofrs/flock"
)

const (
	lockFileName  = ".blobs.lock"
	lockTimeout   = 3 * time.Second
	lockRetryStep = 50 * time.Millisecond
)

// Store guarda blobs como archivos bajo root. Las escrituras y borrados
// toman un flock sobre root/.blobs.lock, así varios procesos pueden compartir
// el directorio. Las URLs son baseURL + "/" + path (servidas por /blobs/*).
type Store struct {
	root    string
	baseURL string
	lock    *flock.Flock
}

func NewStore(root, baseURL string) (*Store, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, errors.New("blob root dir required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create blob root: %w", err)
	}
	return &Store{
		root:    root,
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		lock:    flock.New(filepath.Join(root, lockFileName)),
	}, nil
}

func (s *Store) Put(ctx context.Context, path string, r io.Reader) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	unlock, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}

	// temp + rename: nadie lee un archivo a medio escribir
	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), full)
}

func (s *Store) Open(_ context.Context, path string) (io.ReadCloser, error) {
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, blobstore.ErrNotFound
	}
	return f, err
}

func (s *Store) DownloadURL(_ context.Context, path string) (string, error) {
	full, err := s.resolve(path)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", blobstore.ErrNotFound
		}
		return "", err
	}
	return s.baseURL + "/" + path, nil
}

func (s *Store) Delete(ctx context.Context, path string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	unlock, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if err := os.Remove(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return blobstore.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Store) PathFromURL(url string) (string, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(url), s.baseURL+"/")
	if !ok {
		return "", blobstore.ErrForeignURL
	}
	return blobstore.CleanPath(rest)
}

func (s *Store) resolve(path string) (string, error) {
	p, err := blobstore.CleanPath(path)
	if err != nil {
		return "", err
	}
	if p == lockFileName {
		return "", blobstore.ErrInvalidPath
	}
	return filepath.Join(s.root, filepath.FromSlash(p)), nil
}

func (s *Store) acquire(ctx context.Context) (func(), error) {
	ctx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	locked, err := s.lock.TryLockContext(ctx, lockRetryStep)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire blob lock: %w", err)
	}
	if !locked {
		return nil, errors.New("could not acquire blob lock")
	}
	return func() { _ = s.lock.Unlock() }, nil
}
