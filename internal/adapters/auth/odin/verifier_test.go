package odin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func newOdin(t *testing.T, h http.HandlerFunc) *Verifier {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "k1"})
	assert.Equal(t, err, nil)
	return NewVerifier(c)
}

func TestVerifier_ForwardsTokenAndKey(t *testing.T) {
	v := newOdin(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.URL.Path, verifyPath)
		assert.Equal(t, r.Header.Get("X-Api-Key"), "k1")
		assert.Equal(t, r.Header.Get("Authorization"), "Bearer tok")

		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, body["token"], "tok")

		_, _ = w.Write([]byte(`{"user_id":" u1 ","email":"a@b.c"}`))
	})

	claims, err := v.Verify(context.Background(), "tok")
	assert.Equal(t, err, nil)
	assert.Equal(t, claims.UserID, "u1")
	assert.Equal(t, claims.Email, "a@b.c")
}

func TestVerifier_MapsUpstreamErrors(t *testing.T) {
	status := http.StatusUnauthorized
	v := newOdin(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})

	_, err := v.Verify(context.Background(), "tok")
	assert.Equal(t, errors.Is(err, ErrOdinUnauthorized), true)

	status = http.StatusBadGateway
	_, err = v.Verify(context.Background(), "tok")
	assert.Equal(t, errors.Is(err, ErrOdinUpstream), true)

	_, err = v.Verify(context.Background(), " ")
	assert.Equal(t, err, ErrTokenEmpty)
}

func TestVerifier_NotConfigured(t *testing.T) {
	c, err := NewClient(Config{})
	assert.Equal(t, err, nil)

	_, err = NewVerifier(c).Verify(context.Background(), "tok")
	assert.Equal(t, errors.Is(err, ErrOdinNotConfigured), true)
}
