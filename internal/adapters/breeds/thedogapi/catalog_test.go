package thedogapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestCatalog_SendsKeyAndCaches(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, r.URL.Path, "/v1/breeds")
		assert.Equal(t, r.Header.Get("x-api-key"), "k1")
		_, _ = w.Write([]byte(`[
			{"id":2,"name":"Labrador Retriever","breed_group":"Sporting"},
			{"id":9,"name":"  "},
			{"id":1,"name":"beagle","life_span":"12 - 15 years"}
		]`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL, APIKey: "k1"}, nil)
	assert.Equal(t, err, nil)

	list, err := c.ListBreeds(context.Background())
	assert.Equal(t, err, nil)
	assert.Equal(t, len(list), 2)
	assert.Equal(t, list[0].Name, "beagle")
	assert.Equal(t, list[1].BreedGroup, "Sporting")

	// la copia devuelta no toca la cache
	list[0].Name = "changed"
	again, err := c.ListBreeds(context.Background())
	assert.Equal(t, err, nil)
	assert.Equal(t, again[0].Name, "beagle")
	assert.Equal(t, atomic.LoadInt32(&hits), int32(1))
}

func TestCatalog_ErrorIsNotCached(t *testing.T) {
	fail := int32(1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(&fail) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[{"id":1,"name":"Akita"}]`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL}, nil)
	assert.Equal(t, err, nil)

	_, err = c.ListBreeds(context.Background())
	assert.Equal(t, errors.Is(err, ErrUpstream), true)

	atomic.StoreInt32(&fail, 0)
	list, err := c.ListBreeds(context.Background())
	assert.Equal(t, err, nil)
	assert.Equal(t, len(list), 1)
}
