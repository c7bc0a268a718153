package remotestore

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidPath  = errors.New("invalid path")
	ErrInvalidQuery = errors.New("invalid query")
)

// Direction define el orden de un Query.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Op es un operador de comparación soportado en Where.
type Op string

const (
	OpEqual          Op = "=="
	OpLess           Op = "<"
	OpLessOrEqual    Op = "<="
	OpGreater        Op = ">"
	OpGreaterOrEqual Op = ">="
)

type Filter struct {
	Field string
	Op    Op
	Value any
}

// Query describe una lectura sobre una colección:
// collection(path).orderBy(field, dir).where(...).limit(n)
type Query struct {
	Collection string
	OrderBy    string
	Direction  Direction
	Where      []Filter
	Limit      int // 0 = sin límite
}

// Document es un documento tal cual vive en el store: id + JSON.
type Document struct {
	ID   string
	Data []byte
}

type DocRef struct {
	Collection string
	ID         string
}

func (r DocRef) Path() string {
	return r.Collection + "/" + r.ID
}

// Listener recibe el snapshot completo (ordenado) en cada cambio.
// Si err != nil, docs es nil y el snapshot anterior sigue siendo válido.
type Listener func(docs []Document, err error)

// Registration desengancha un listener. Remove es idempotente.
type Registration interface {
	Remove()
}

// Store es el contrato mínimo de la base documental remota.
// Set sobrescribe el documento completo (no merge).
type Store interface {
	Set(ctx context.Context, collection, id string, data []byte) error
	Add(ctx context.Context, collection string, data []byte) (string, error)
	GetDoc(ctx context.Context, collection, id string) (Document, bool, error)
	Delete(ctx context.Context, collection, id string) error
	Query(ctx context.Context, q Query) ([]Document, error)
	Listen(q Query, fn Listener) (Registration, error)
}

// BatchDeleter lo implementan los backends con transacciones baratas.
// DeleteBatch borra todos los refs de forma atómica.
type BatchDeleter interface {
	DeleteBatch(ctx context.Context, refs []DocRef) error
}

// Join arma un path de colección validando cada segmento.
func Join(segments ...string) (string, error) {
	if len(segments) == 0 {
		return "", ErrInvalidPath
	}
	for _, s := range segments {
		if !ValidSegment(s) {
			return "", ErrInvalidPath
		}
	}
	return strings.Join(segments, "/"), nil
}

func ValidSegment(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	return !strings.Contains(s, "/")
}
