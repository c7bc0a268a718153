package postgres

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"paws-sync/internal/platform/logger"
	"paws-sync/internal/ports/remotestore"

	"github.com/jackc/pgx/v5/stdlib"
)

const reconnectDelay = time.Second

// notifyHub mantiene UNA conexión con LISTEN y reparte cada NOTIFY
// (payload = collection) a los listeners de esa colección.
type notifyHub struct {
	db  *sql.DB
	log logger.Logger

	mu   sync.Mutex
	subs map[uint64]*pgListener
	next uint64

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newNotifyHub(db *sql.DB, log logger.Logger) *notifyHub {
	ctx, cancel := context.WithCancel(context.Background())
	return &notifyHub{
		db:     db,
		log:    log,
		subs:   make(map[uint64]*pgListener),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (h *notifyHub) start() {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		for {
			err := h.listenOnce()
			if h.ctx.Err() != nil {
				return
			}
			h.log.Warn("notify connection lost, reconnecting", map[string]any{"err": err})

			select {
			case <-h.ctx.Done():
				return
			case <-time.After(reconnectDelay):
			}
		}
	}()
}

func (h *notifyHub) stop() {
	h.cancel()
	h.wg.Wait()

	h.mu.Lock()
	subs := make([]*pgListener, 0, len(h.subs))
	for _, l := range h.subs {
		subs = append(subs, l)
	}
	h.mu.Unlock()

	for _, l := range subs {
		l.Remove()
	}
}

func (h *notifyHub) listenOnce() error {
	conn, err := h.db.Conn(h.ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return conn.Raw(func(driverConn any) error {
		sc, ok := driverConn.(*stdlib.Conn)
		if !ok {
			return errors.New("unexpected driver connection type")
		}
		pc := sc.Conn()

		if _, err := pc.Exec(h.ctx, "LISTEN "+notifyChannel); err != nil {
			return err
		}

		// Tras (re)conectar pudimos perder NOTIFYs: todos re-consultan.
		h.broadcast("")

		for {
			n, err := pc.WaitForNotification(h.ctx)
			if err != nil {
				return err
			}
			h.broadcast(n.Payload)
		}
	})
}

// broadcast despierta a los listeners de collection ("" = todos).
func (h *notifyHub) broadcast(collection string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, l := range h.subs {
		if collection == "" || l.query.Collection == collection {
			l.wake()
		}
	}
}

func (h *notifyHub) add(s *Store, q remotestore.Query, fn remotestore.Listener) *pgListener {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.next++
	l := &pgListener{
		id:     h.next,
		query:  q,
		fn:     fn,
		store:  s,
		hub:    h,
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	h.subs[l.id] = l

	go l.run()
	l.wake() // snapshot inicial
	return l
}

func (h *notifyHub) remove(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, id)
}

// pgListener re-consulta su query en cada wake y entrega el resultado.
// Una sola goroutine por listener: los snapshots salen en orden y cada
// consulta ve todo lo commiteado antes de ella.
type pgListener struct {
	id    uint64
	query remotestore.Query
	fn    remotestore.Listener
	store *Store
	hub   *notifyHub

	signal chan struct{}
	done   chan struct{}
	once   sync.Once
}

func (l *pgListener) wake() {
	select {
	case l.signal <- struct{}{}:
	default:
	}
}

func (l *pgListener) run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-l.done
		cancel()
	}()

	for {
		select {
		case <-l.done:
			return
		case <-l.signal:
		}

		docs, err := l.store.Query(ctx, l.query)

		select {
		case <-l.done:
			return
		default:
		}

		if err != nil {
			l.fn(nil, err)
			continue
		}
		l.fn(docs, nil)
	}
}

func (l *pgListener) Remove() {
	l.once.Do(func() {
		close(l.done)
		l.hub.remove(l.id)
	})
}
