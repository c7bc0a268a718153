package entity

import (
	"context"
	"sync"

	"paws-sync/internal/ports/remotestore"
)

// Subscription es el handle de un listener vivo. Release es idempotente y,
// al volver, no se disparan más callbacks (salvo uno que ya estuviera en vuelo).
// El valor cero es un handle ya desenganchado de cualquier listener.
type Subscription struct {
	mu       sync.Mutex
	reg      remotestore.Registration
	stop     func() bool
	released bool
	done     chan struct{}
}

func newSubscription() *Subscription {
	return &Subscription{done: make(chan struct{})}
}

func (s *Subscription) attach(ctx context.Context, reg remotestore.Registration) {
	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		reg.Remove()
		return
	}
	s.reg = reg
	s.mu.Unlock()

	if ctx != nil && ctx.Done() != nil {
		stop := context.AfterFunc(ctx, s.Release)
		s.mu.Lock()
		s.stop = stop
		s.mu.Unlock()
	}
}

func (s *Subscription) Release() {
	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		return
	}
	s.released = true
	reg, stop := s.reg, s.stop
	s.mu.Unlock()

	if stop != nil {
		stop()
	}
	if reg != nil {
		reg.Remove()
	}
	close(s.doneChan())
}

// Done se cierra cuando la suscripción fue liberada.
func (s *Subscription) Done() <-chan struct{} { return s.doneChan() }

func (s *Subscription) doneChan() chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done == nil {
		s.done = make(chan struct{})
	}
	return s.done
}

func (s *Subscription) isReleased() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.released
}

// Scope agrupa suscripciones de una misma pantalla/sesión y las libera todas en
// Close, sin importar por dónde se salga:
//
//	scope := entity.NewScope()
//	defer scope.Close()
//	scope.Track(repo.Subscribe(ctx, dogID, render))
type Scope struct {
	mu     sync.Mutex
	subs   []*Subscription
	closed bool
}

func NewScope() *Scope { return &Scope{} }

// Track adopta la suscripción. Acepta directamente el (sub, err) de Subscribe.
func (s *Scope) Track(sub *Subscription, err error) (*Subscription, error) {
	if err != nil || sub == nil {
		return sub, err
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		sub.Release()
		return sub, nil
	}
	s.subs = append(s.subs, sub)
	s.mu.Unlock()
	return sub, nil
}

func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()

	for _, sub := range subs {
		sub.Release()
	}
}
