package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"paws-sync/internal/platform/logger"
	"paws-sync/internal/ports/remotestore"

	"github.com/oklog/ulid/v2"
)

type document struct {
	data   []byte
	fields map[string]any
}

// Store es una base documental en memoria con la misma semántica que el backend
// gestionado: colecciones por path, Set como overwrite completo, ids ULID generados
// en Add y listeners que reciben el snapshot completo en orden de commit.
// Borrar un documento NO borra sus subcolecciones.
type Store struct {
	mu  sync.Mutex
	seq uint64

	byCollection map[string]map[string]document

	listeners    map[uint64]*listener
	nextListener uint64

	log logger.Logger
}

func NewStore(log logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		byCollection: make(map[string]map[string]document),
		listeners:    make(map[uint64]*listener),
		log:          log.With(map[string]any{"component": "memory_store"}),
	}
}

func (s *Store) Set(ctx context.Context, collection, id string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !validCollection(collection) || !remotestore.ValidSegment(id) {
		return remotestore.ErrInvalidPath
	}
	fields, err := decodeFields(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	docs, ok := s.byCollection[collection]
	if !ok {
		docs = make(map[string]document)
		s.byCollection[collection] = docs
	}
	docs[id] = document{data: clone(data), fields: fields}
	s.commitLocked(collection)
	return nil
}

func (s *Store) Add(ctx context.Context, collection string, data []byte) (string, error) {
	id := ulid.Make().String()
	if err := s.Set(ctx, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetDoc(ctx context.Context, collection, id string) (remotestore.Document, bool, error) {
	if err := ctx.Err(); err != nil {
		return remotestore.Document{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.byCollection[collection][id]
	if !ok {
		return remotestore.Document{}, false, nil
	}
	return remotestore.Document{ID: id, Data: clone(d.data)}, true, nil
}

// Delete es idempotente: borrar algo inexistente no es error (igual que el backend).
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	docs, ok := s.byCollection[collection]
	if !ok {
		return nil
	}
	if _, ok := docs[id]; !ok {
		return nil
	}
	delete(docs, id)
	if len(docs) == 0 {
		delete(s.byCollection, collection)
	}
	s.commitLocked(collection)
	return nil
}

func (s *Store) Query(ctx context.Context, q remotestore.Query) ([]remotestore.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateQuery(q); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.evalLocked(q)
}

func (s *Store) Listen(q remotestore.Query, fn remotestore.Listener) (remotestore.Registration, error) {
	if fn == nil {
		return nil, errors.New("listener required")
	}
	if err := validateQuery(q); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextListener++
	l := newListener(s.nextListener, q, fn, s)
	s.listeners[l.id] = l

	// snapshot inicial
	docs, err := s.evalLocked(q)
	if err != nil {
		l.offer(s.seq, nil, err)
	} else {
		l.offer(s.seq, docs, nil)
	}

	s.log.Debug("listener attached", map[string]any{"collection": q.Collection, "listener": l.id})

	go l.run()
	return l, nil
}

// DocumentPaths lista los paths "collection/id" que empiezan con prefix.
// Se usa para verificar que no quedan huérfanos.
func (s *Store) DocumentPaths(prefix string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0)
	for col, docs := range s.byCollection {
		for id := range docs {
			p := col + "/" + id
			if strings.HasPrefix(p, prefix) {
				out = append(out, p)
			}
		}
	}
	sort.Strings(out)
	return out
}

func (s *Store) removeListener(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, id)
}

// commitLocked avanza la secuencia global y encola el nuevo snapshot
// en cada listener de la colección afectada. Requiere s.mu tomado.
func (s *Store) commitLocked(collection string) {
	s.seq++
	for _, l := range s.listeners {
		if l.query.Collection != collection {
			continue
		}
		docs, err := s.evalLocked(l.query)
		if err != nil {
			l.offer(s.seq, nil, err)
			continue
		}
		l.offer(s.seq, docs, nil)
	}
}

func (s *Store) evalLocked(q remotestore.Query) ([]remotestore.Document, error) {
	docs := s.byCollection[q.Collection]

	type row struct {
		id  string
		doc document
	}
	rows := make([]row, 0, len(docs))

	for id, d := range docs {
		// Igual que el backend: sin el campo de orden, el doc no entra al query.
		if q.OrderBy != "" {
			if _, ok := d.fields[q.OrderBy]; !ok {
				continue
			}
		}
		ok, err := matches(d.fields, q.Where)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		rows = append(rows, row{id: id, doc: d})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if q.OrderBy != "" {
			c := compare(rows[i].doc.fields[q.OrderBy], rows[j].doc.fields[q.OrderBy])
			if c != 0 {
				if q.Direction == remotestore.Descending {
					return c > 0
				}
				return c < 0
			}
		}
		return rows[i].id < rows[j].id
	})

	if q.Limit > 0 && len(rows) > q.Limit {
		rows = rows[:q.Limit]
	}

	out := make([]remotestore.Document, 0, len(rows))
	for _, r := range rows {
		out = append(out, remotestore.Document{ID: r.id, Data: clone(r.doc.data)})
	}
	return out, nil
}

func validCollection(c string) bool {
	if strings.TrimSpace(c) == "" {
		return false
	}
	for _, seg := range strings.Split(c, "/") {
		if !remotestore.ValidSegment(seg) {
			return false
		}
	}
	return true
}

func validateQuery(q remotestore.Query) error {
	if !validCollection(q.Collection) {
		return remotestore.ErrInvalidPath
	}
	if q.Limit < 0 {
		return remotestore.ErrInvalidQuery
	}
	switch q.Direction {
	case "", remotestore.Ascending, remotestore.Descending:
	default:
		return remotestore.ErrInvalidQuery
	}
	for _, f := range q.Where {
		if strings.TrimSpace(f.Field) == "" {
			return remotestore.ErrInvalidQuery
		}
		switch f.Op {
		case remotestore.OpEqual, remotestore.OpLess, remotestore.OpLessOrEqual,
			remotestore.OpGreater, remotestore.OpGreaterOrEqual:
		default:
			return remotestore.ErrInvalidQuery
		}
	}
	return nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
