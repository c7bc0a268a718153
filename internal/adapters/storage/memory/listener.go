package memory

import (
	"sync"

	"paws-sync/internal/ports/remotestore"
)

type pending struct {
	seq  uint64
	docs []remotestore.Document
	err  error
}

// listener entrega snapshots en su propia goroutine.
// El buzón guarda solo el último snapshot pendiente: como cada entrega es la lista
// completa, saltear intermedios nunca hace "retroceder" al consumidor.
type listener struct {
	id    uint64
	query remotestore.Query
	fn    remotestore.Listener
	store *Store

	mu        sync.Mutex
	next      *pending
	delivered uint64

	signal chan struct{}
	done   chan struct{}
	once   sync.Once
}

func newListener(id uint64, q remotestore.Query, fn remotestore.Listener, s *Store) *listener {
	return &listener{
		id:     id,
		query:  q,
		fn:     fn,
		store:  s,
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

func (l *listener) offer(seq uint64, docs []remotestore.Document, err error) {
	l.mu.Lock()
	if l.next == nil || seq >= l.next.seq {
		l.next = &pending{seq: seq, docs: docs, err: err}
	}
	l.mu.Unlock()

	select {
	case l.signal <- struct{}{}:
	default:
	}
}

func (l *listener) run() {
	for {
		select {
		case <-l.done:
			return
		case <-l.signal:
		}

		l.mu.Lock()
		p := l.next
		l.next = nil
		if p != nil && p.seq < l.delivered {
			p = nil
		}
		if p != nil {
			l.delivered = p.seq
		}
		l.mu.Unlock()

		if p == nil {
			continue
		}

		select {
		case <-l.done:
			return
		default:
		}

		if p.err != nil {
			l.fn(nil, p.err)
			continue
		}
		l.fn(p.docs, nil)
	}
}

// Remove desengancha el listener. Puede quedar a lo sumo un callback en vuelo.
func (l *listener) Remove() {
	l.once.Do(func() {
		close(l.done)
		l.store.removeListener(l.id)
	})
}
