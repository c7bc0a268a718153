package livestream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/gorilla/websocket"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return ws
}

func TestServe_PushesAndReceives(t *testing.T) {
	released := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Serve(w, r, nil, nil, func(ctx context.Context, s *Session) (func(Inbound), error) {
			s.Send(Message{Type: "snapshot", Data: []string{"a"}})
			context.AfterFunc(ctx, func() { close(released) })
			return func(in Inbound) {
				s.Send(Message{Type: "echo", Data: in.Type})
			}, nil
		})
	}))
	defer srv.Close()

	ws := dial(t, srv)
	ws.SetReadDeadline(time.Now().Add(2 * time.Second))

	var msg struct {
		Type string   `json:"type"`
		Data []string `json:"data"`
	}
	assert.Equal(t, ws.ReadJSON(&msg), nil)
	assert.Equal(t, msg.Type, "snapshot")
	assert.Equal(t, msg.Data, []string{"a"})

	assert.Equal(t, ws.WriteJSON(Inbound{Type: "refresh"}), nil)

	var echo struct {
		Type string `json:"type"`
		Data string `json:"data"`
	}
	assert.Equal(t, ws.ReadJSON(&echo), nil)
	assert.Equal(t, echo.Type, "echo")
	assert.Equal(t, echo.Data, "refresh")

	_ = ws.Close()

	select {
	case <-released:
	case <-time.After(2 * time.Second):
		t.Fatalf("session context not cancelled after close")
	}
}

func TestServe_AttachErrorIsReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Serve(w, r, nil, nil, func(context.Context, *Session) (func(Inbound), error) {
			return nil, errors.New("user not logged in")
		})
	}))
	defer srv.Close()

	ws := dial(t, srv)
	defer ws.Close()
	ws.SetReadDeadline(time.Now().Add(2 * time.Second))

	var msg Message
	assert.Equal(t, ws.ReadJSON(&msg), nil)
	assert.Equal(t, msg.Type, "error")
	assert.Equal(t, msg.Error, "user not logged in")
}

func TestSession_SendCoalescesSameType(t *testing.T) {
	s := &Session{signal: make(chan struct{}, 1)}

	s.Send(Message{Type: "notes", Data: 1})
	s.Send(Message{Type: "weights", Data: 1})
	s.Send(Message{Type: "notes", Data: 2})

	got := s.take()
	assert.Equal(t, len(got), 2)
	assert.Equal(t, got[0].Type, "notes")
	assert.Equal(t, got[0].Data, 2)
	assert.Equal(t, got[1].Type, "weights")
	assert.Equal(t, len(s.take()), 0)
}

func TestServe_PingsWhileSnapshotsKeepFlowing(t *testing.T) {
	settings := &Settings{
		HandshakeTimeout: time.Second,
		WriteTimeout:     time.Second,
		ReadTimeout:      900 * time.Millisecond,
		PingTimeout:      300 * time.Millisecond,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Serve(w, r, settings, nil, func(ctx context.Context, s *Session) (func(Inbound), error) {
			go func() {
				tick := time.NewTicker(100 * time.Millisecond)
				defer tick.Stop()
				n := 0
				for {
					select {
					case <-ctx.Done():
						return
					case <-tick.C:
						n++
						s.Send(Message{Type: "snapshot", Data: n})
					}
				}
			}()
			return nil, nil
		})
	}))
	defer srv.Close()

	ws := dial(t, srv)
	defer ws.Close()

	// cliente que solo escucha: el pong lo contesta el handler por defecto de gorilla
	until := time.Now().Add(2500 * time.Millisecond)
	received := 0
	for time.Now().Before(until) {
		ws.SetReadDeadline(time.Now().Add(time.Second))
		var msg Message
		if err := ws.ReadJSON(&msg); err != nil {
			t.Fatalf("stream closed after %d messages: %v", received, err)
		}
		received++
	}
	assert.Equal(t, received > 10, true)
}
