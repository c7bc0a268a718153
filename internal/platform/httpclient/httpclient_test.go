package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDoJSON_HeadersAndErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Key") != "override" || r.Header.Get("Accept") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Path == "/missing" {
			http.Error(w, "nope", http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL+"/", 0)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	c.WithHeader("X-Key", "default")

	var out struct {
		OK bool `json:"ok"`
	}
	if err := c.DoJSON(context.Background(), http.MethodGet, "ping", map[string]string{"X-Key": "override"}, nil, &out); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !out.OK {
		t.Fatalf("expected ok=true")
	}

	err = c.DoJSON(context.Background(), http.MethodGet, "/missing", map[string]string{"X-Key": "override"}, nil, nil)
	var he *HTTPError
	if !errors.As(err, &he) || he.StatusCode != http.StatusNotFound || he.Body != "nope" {
		t.Fatalf("expected 404 HTTPError, got %v", err)
	}
}

func TestDoJSON_RelativePathNeedsBaseURL(t *testing.T) {
	if err := New(0).DoJSON(context.Background(), http.MethodGet, "/x", nil, nil, nil); err == nil {
		t.Fatalf("expected error without BaseURL")
	}
	if _, err := NewWithBaseURL("::bad", 0); err == nil {
		t.Fatalf("expected invalid base url error")
	}
}
