package entity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"paws-sync/internal/platform/logger"
	"paws-sync/internal/ports/auth"
	"paws-sync/internal/ports/remotestore"
)

// Repository es el CRUD + listener genérico de un tipo de entidad en una colección.
// No reintenta: cualquier error del store vuelve como ErrRemoteFailure.
type Repository[T Entity[T]] struct {
	store remotestore.Store
	ident auth.IdentityProvider
	col   Collection
	log   logger.Logger
}

func NewRepository[T Entity[T]](store remotestore.Store, ident auth.IdentityProvider, col Collection, log logger.Logger) *Repository[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &Repository[T]{
		store: store,
		ident: ident,
		col:   col,
		log:   log.With(map[string]any{"collection": col.Name}),
	}
}

func (r *Repository[T]) Collection() Collection { return r.col }

// Path resuelve el path de la colección para el usuario del ctx.
func (r *Repository[T]) Path(ctx context.Context, parentID string) (string, error) {
	uid, ok := r.ident.CurrentUserID(ctx)
	if !ok {
		return "", ErrNotAuthenticated
	}
	p, err := r.col.Path(uid, parentID)
	if err != nil {
		return "", fmt.Errorf("%w: %s path: %v", ErrInvalidInput, r.col.Name, err)
	}
	return p, nil
}

// Add inserta la entidad. Si trae id se escribe con ese id (ids generados por el
// cliente, conocidos antes de que termine el write); si no, el store genera uno.
func (r *Repository[T]) Add(ctx context.Context, parentID string, e T) (string, error) {
	path, err := r.Path(ctx, parentID)
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("%w: encode %s: %v", ErrInvalidInput, r.col.Name, err)
	}

	if id := strings.TrimSpace(e.EntityID()); id != "" {
		if err := r.store.Set(ctx, path, id, data); err != nil {
			return "", remoteFailure("add "+r.col.Name, err)
		}
		return id, nil
	}

	id, err := r.store.Add(ctx, path, data)
	if err != nil {
		return "", remoteFailure("add "+r.col.Name, err)
	}
	return id, nil
}

// Get trae la lista completa ordenada según la colección.
func (r *Repository[T]) Get(ctx context.Context, parentID string) ([]T, error) {
	return r.Query(ctx, parentID, nil, 0)
}

func (r *Repository[T]) Query(ctx context.Context, parentID string, where []remotestore.Filter, limit int) ([]T, error) {
	path, err := r.Path(ctx, parentID)
	if err != nil {
		return nil, err
	}
	docs, err := r.store.Query(ctx, r.query(path, where, limit))
	if err != nil {
		return nil, remoteFailure("get "+r.col.Name, err)
	}
	return r.decodeAll(docs), nil
}

func (r *Repository[T]) GetByID(ctx context.Context, parentID, id string) (T, bool, error) {
	var zero T
	if strings.TrimSpace(id) == "" {
		return zero, false, ErrInvalidInput
	}
	path, err := r.Path(ctx, parentID)
	if err != nil {
		return zero, false, err
	}
	doc, ok, err := r.store.GetDoc(ctx, path, id)
	if err != nil {
		return zero, false, remoteFailure("get "+r.col.Name, err)
	}
	if !ok {
		return zero, false, nil
	}
	e, err := decode[T](doc)
	if err != nil {
		return zero, false, remoteFailure("decode "+r.col.Name, err)
	}
	return e, true, nil
}

// Update sobrescribe el documento completo (no es PATCH): pasar la entidad entera.
func (r *Repository[T]) Update(ctx context.Context, parentID string, e T) error {
	id := strings.TrimSpace(e.EntityID())
	if id == "" {
		return ErrInvalidInput
	}
	path, err := r.Path(ctx, parentID)
	if err != nil {
		return err
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrInvalidInput, r.col.Name, err)
	}
	if err := r.store.Set(ctx, path, id, data); err != nil {
		return remoteFailure("update "+r.col.Name, err)
	}
	return nil
}

func (r *Repository[T]) Delete(ctx context.Context, parentID, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	path, err := r.Path(ctx, parentID)
	if err != nil {
		return err
	}
	if err := r.store.Delete(ctx, path, id); err != nil {
		return remoteFailure("delete "+r.col.Name, err)
	}
	return nil
}

// Refs lista TODOS los documentos de la colección, sin filtro de orden
// (un query ordenado omitiría docs sin el campo de orden).
func (r *Repository[T]) Refs(ctx context.Context, parentID string) ([]remotestore.DocRef, error) {
	path, err := r.Path(ctx, parentID)
	if err != nil {
		return nil, err
	}
	docs, err := r.store.Query(ctx, remotestore.Query{Collection: path})
	if err != nil {
		return nil, remoteFailure("list "+r.col.Name, err)
	}
	out := make([]remotestore.DocRef, 0, len(docs))
	for _, d := range docs {
		out = append(out, remotestore.DocRef{Collection: path, ID: d.ID})
	}
	return out, nil
}

// Subscribe registra un listener: onChange recibe la lista completa ordenada en
// cada cambio, incluido el snapshot inicial. No bloquea.
// La suscripción se libera con Release() o cuando ctx termina.
func (r *Repository[T]) Subscribe(ctx context.Context, parentID string, onChange func([]T)) (*Subscription, error) {
	return r.SubscribeQuery(ctx, parentID, nil, 0, onChange)
}

func (r *Repository[T]) SubscribeQuery(ctx context.Context, parentID string, where []remotestore.Filter, limit int, onChange func([]T)) (*Subscription, error) {
	if onChange == nil {
		return nil, ErrInvalidInput
	}
	path, err := r.Path(ctx, parentID)
	if err != nil {
		return nil, err
	}

	sub := newSubscription()
	reg, err := r.store.Listen(r.query(path, where, limit), func(docs []remotestore.Document, err error) {
		if sub.isReleased() {
			return
		}
		if err != nil {
			// nos quedamos con el último snapshot bueno
			r.log.Warn("listener error", map[string]any{"path": path, "err": err})
			return
		}
		onChange(r.decodeAll(docs))
	})
	if err != nil {
		return nil, remoteFailure("subscribe "+r.col.Name, err)
	}

	sub.attach(ctx, reg)
	return sub, nil
}

func (r *Repository[T]) query(path string, where []remotestore.Filter, limit int) remotestore.Query {
	return remotestore.Query{
		Collection: path,
		OrderBy:    r.col.OrderBy,
		Direction:  r.col.Direction,
		Where:      where,
		Limit:      limit,
	}
}

func (r *Repository[T]) decodeAll(docs []remotestore.Document) []T {
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		e, err := decode[T](d)
		if err != nil {
			r.log.Warn("skipping undecodable document", map[string]any{"id": d.ID, "err": err})
			continue
		}
		out = append(out, e)
	}
	return out
}

func decode[T Entity[T]](d remotestore.Document) (T, error) {
	var e T
	if err := json.Unmarshal(d.Data, &e); err != nil {
		return e, err
	}
	return e.WithID(d.ID), nil
}
