package blobstore

import (
	"context"
	"errors"
	"io"
	"strings"
)

var (
	ErrNotFound    = errors.New("blob not found")
	ErrInvalidPath = errors.New("invalid blob path")
	ErrForeignURL  = errors.New("url does not belong to this blob store")
)

// Store guarda contenido binario (imágenes) por path.
type Store interface {
	Put(ctx context.Context, path string, r io.Reader) error
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	DownloadURL(ctx context.Context, path string) (string, error)
	Delete(ctx context.Context, path string) error

	// PathFromURL resuelve una URL emitida por DownloadURL a su path.
	PathFromURL(url string) (string, error)
}

// CleanPath valida un path relativo tipo "dogs/u1/d1/123.jpg":
// segmentos no vacíos, sin "." ni "..", sin "/" inicial.
func CleanPath(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" || strings.HasPrefix(p, "/") {
		return "", ErrInvalidPath
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == "" || seg == "." || seg == ".." || strings.ContainsAny(seg, `\`) {
			return "", ErrInvalidPath
		}
	}
	return p, nil
}
