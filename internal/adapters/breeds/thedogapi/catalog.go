package thedogapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"paws-sync/internal/platform/httpclient"
	"paws-sync/internal/platform/logger"
	"paws-sync/internal/ports/breeds"
)

const (
	DefaultBaseURL = "https://api.thedogapi.com"
	breedsPath     = "/v1/breeds"
	apiKeyHeader   = "x-api-key"
)

var ErrUpstream = errors.New("thedogapi upstream error")

// Config: APIKey es opcional, sin key el listado de razas igual responde.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Catalog implementa breeds.Catalog. La primera respuesta exitosa queda
// cacheada en memoria; un error no se cachea.
type Catalog struct {
	http *httpclient.Client
	log  logger.Logger

	mu     sync.Mutex
	cached []breeds.Breed
}

func New(cfg Config, log logger.Logger) (*Catalog, error) {
	if log == nil {
		log = logger.Nop()
	}
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	hc, err := httpclient.NewWithBaseURL(base, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	hc.WithHeader(apiKeyHeader, strings.TrimSpace(cfg.APIKey))

	return &Catalog{
		http: hc,
		log:  log.With(map[string]any{"component": "thedogapi"}),
	}, nil
}

func (c *Catalog) ListBreeds(ctx context.Context) ([]breeds.Breed, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil {
		return copyBreeds(c.cached), nil
	}

	var out []breeds.Breed
	if err := c.http.DoJSON(ctx, http.MethodGet, breedsPath, nil, nil, &out); err != nil {
		c.log.Warn("breed list failed", map[string]any{"err": err})
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	clean := make([]breeds.Breed, 0, len(out))
	for _, b := range out {
		b.Name = strings.TrimSpace(b.Name)
		if b.Name == "" {
			continue
		}
		clean = append(clean, b)
	}
	sort.SliceStable(clean, func(i, j int) bool {
		return strings.ToLower(clean[i].Name) < strings.ToLower(clean[j].Name)
	})

	c.cached = clean
	c.log.Info("breed catalog loaded", map[string]any{"count": len(clean)})
	return copyBreeds(clean), nil
}

func copyBreeds(in []breeds.Breed) []breeds.Breed {
	out := make([]breeds.Breed, len(in))
	copy(out, in)
	return out
}
