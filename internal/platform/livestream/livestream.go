package livestream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"paws-sync/internal/platform/logger"

	"github.com/gorilla/websocket"
)

type Settings struct {
	HandshakeTimeout time.Duration
	WriteTimeout     time.Duration
	ReadTimeout      time.Duration
	PingTimeout      time.Duration
}

func DefaultSettings() *Settings {
	return &Settings{
		HandshakeTimeout: 5 * time.Second,
		WriteTimeout:     5 * time.Second,
		ReadTimeout:      60 * time.Second,
		PingTimeout:      20 * time.Second,
	}
}

// Message es lo que el servidor empuja al cliente.
type Message struct {
	Type  string `json:"type"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Inbound es lo que manda el cliente (comandos).
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// AttachFunc engancha las suscripciones de la sesión. Deben liberarse cuando
// ctx termina (ctx se cancela al cerrarse el socket). El handler devuelto
// recibe los comandos del cliente; puede ser nil.
type AttachFunc func(ctx context.Context, s *Session) (func(Inbound), error)

// Session es un websocket que empuja snapshots JSON. Send no bloquea:
// si hay un mensaje pendiente del mismo Type, se reemplaza por el nuevo
// (los snapshots son completos, alcanza con el último).
type Session struct {
	ws       *websocket.Conn
	settings *Settings
	log      logger.Logger

	mu      sync.Mutex
	pending []Message
	signal  chan struct{}
}

func (s *Session) Send(msg Message) {
	s.mu.Lock()
	replaced := false
	for i := range s.pending {
		if s.pending[i].Type == msg.Type {
			s.pending[i] = msg
			replaced = true
			break
		}
	}
	if !replaced {
		s.pending = append(s.pending, msg)
	}
	s.mu.Unlock()

	select {
	case s.signal <- struct{}{}:
	default:
	}
}

func (s *Session) take() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.pending
	s.pending = nil
	return out
}

// Serve hace el upgrade y bloquea hasta que el cliente cierra.
func Serve(w http.ResponseWriter, r *http.Request, settings *Settings, log logger.Logger, attach AttachFunc) {
	if settings == nil {
		settings = DefaultSettings()
	}
	if log == nil {
		log = logger.Nop()
	}

	upgrader := websocket.Upgrader{
		HandshakeTimeout: settings.HandshakeTimeout,
		// el token ya lo validó el middleware de auth
		CheckOrigin: func(*http.Request) bool { return true },
	}
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade ya respondió con el error HTTP
		log.Debug("websocket upgrade failed", map[string]any{"err": err})
		return
	}
	defer ws.Close()

	// conserva los valores del request (claims) pero la vida la maneja el socket
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	defer cancel()

	s := &Session{
		ws:       ws,
		settings: settings,
		log:      log,
		signal:   make(chan struct{}, 1),
	}

	onMessage, err := attach(ctx, s)
	if err != nil {
		s.closeWithError(err)
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.writeLoop(ctx)
		cancel()
		// desbloquea el ReadMessage pendiente
		_ = ws.Close()
	}()

	s.readLoop(ctx, onMessage)
	cancel()
	<-done
}

func (s *Session) writeLoop(ctx context.Context) {
	// un solo ticker: con snapshots frecuentes el ping igual tiene que salir
	ping := time.NewTicker(s.settings.PingTimeout)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.signal:
			for _, msg := range s.take() {
				if err := s.write(msg); err != nil {
					s.log.Debug("websocket write failed", map[string]any{"err": err})
					return
				}
			}
		case <-ping.C:
			s.ws.SetWriteDeadline(time.Now().Add(s.settings.WriteTimeout))
			if err := s.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (s *Session) readLoop(ctx context.Context, onMessage func(Inbound)) {
	s.ws.SetPongHandler(func(string) error {
		return s.ws.SetReadDeadline(time.Now().Add(s.settings.ReadTimeout))
	})

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		s.ws.SetReadDeadline(time.Now().Add(s.settings.ReadTimeout))
		messageType, data, err := s.ws.ReadMessage()
		if err != nil {
			var ce *websocket.CloseError
			if !errors.As(err, &ce) {
				s.log.Debug("websocket read failed", map[string]any{"err": err})
			}
			return
		}
		if messageType != websocket.TextMessage || onMessage == nil {
			continue
		}

		var in Inbound
		if err := json.Unmarshal(data, &in); err != nil {
			s.Send(Message{Type: "error", Error: "invalid json"})
			continue
		}
		onMessage(in)
	}
}

func (s *Session) write(msg Message) error {
	s.ws.SetWriteDeadline(time.Now().Add(s.settings.WriteTimeout))
	return s.ws.WriteJSON(msg)
}

func (s *Session) closeWithError(err error) {
	_ = s.write(Message{Type: "error", Error: err.Error()})
	s.ws.SetWriteDeadline(time.Now().Add(s.settings.WriteTimeout))
	_ = s.ws.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error()))
}
