package postgres

import (
	"context"
	"database/sql"
	"strings"
	"sync"

	"paws-sync/internal/platform/logger"
	"paws-sync/internal/ports/remotestore"

	"github.com/oklog/ulid/v2"
)

// Store implementa remotestore.Store sobre una tabla JSONB única
// (collection, id, data). Los listeners se alimentan con LISTEN/NOTIFY.
type Store struct {
	db  *sql.DB
	log logger.Logger

	hubOnce sync.Once
	hub     *notifyHub
}

func NewStore(db *sql.DB, log logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		db:  db,
		log: log.With(map[string]any{"component": "postgres_store"}),
	}
}

func (s *Store) Set(ctx context.Context, collection, id string, data []byte) error {
	if !validCollection(collection) || !remotestore.ValidSegment(id) {
		return remotestore.ErrInvalidPath
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, data, updated_at)
		VALUES ($1, $2, $3::jsonb, now())
		ON CONFLICT (collection, id) DO UPDATE
		SET data = EXCLUDED.data, updated_at = now()
	`, collection, id, string(data))
	return err
}

func (s *Store) Add(ctx context.Context, collection string, data []byte) (string, error) {
	id := ulid.Make().String()
	if err := s.Set(ctx, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetDoc(ctx context.Context, collection, id string) (remotestore.Document, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT data FROM documents WHERE collection = $1 AND id = $2
	`, collection, id)

	var data []byte
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return remotestore.Document{}, false, nil
		}
		return remotestore.Document{}, false, err
	}
	return remotestore.Document{ID: id, Data: data}, true, nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM documents WHERE collection = $1 AND id = $2
	`, collection, id)
	return err
}

// DeleteBatch borra todos los refs en una sola transacción.
func (s *Store) DeleteBatch(ctx context.Context, refs []remotestore.DocRef) error {
	if len(refs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, ref := range refs {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM documents WHERE collection = $1 AND id = $2
		`, ref.Collection, ref.ID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) Query(ctx context.Context, q remotestore.Query) ([]remotestore.Document, error) {
	stmt, args, err := buildQuery(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]remotestore.Document, 0)
	for rows.Next() {
		var d remotestore.Document
		if err := rows.Scan(&d.ID, &d.Data); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) Listen(q remotestore.Query, fn remotestore.Listener) (remotestore.Registration, error) {
	if fn == nil {
		return nil, remotestore.ErrInvalidQuery
	}
	if _, _, err := buildQuery(q); err != nil {
		return nil, err
	}

	s.hubOnce.Do(func() {
		s.hub = newNotifyHub(s.db, s.log)
		s.hub.start()
	})
	return s.hub.add(s, q, fn), nil
}

// Close detiene el hub de notificaciones (no cierra el *sql.DB).
func (s *Store) Close() {
	if s.hub != nil {
		s.hub.stop()
	}
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
