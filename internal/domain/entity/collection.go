package entity

import (
	"strings"

	"paws-sync/internal/ports/remotestore"
)

// Entity es cualquier registro identificado por un id string.
// WithID devuelve una copia con el id asignado (los registros son inmutables por convención).
type Entity[T any] interface {
	EntityID() string
	WithID(id string) T
}

// PathFunc arma el path de la colección para un usuario y (opcional) un padre.
type PathFunc func(uid, parentID string) (string, error)

// Collection describe dónde vive un tipo de entidad y cómo se ordena.
type Collection struct {
	Name      string
	Path      PathFunc
	OrderBy   string
	Direction remotestore.Direction
}

// Layout de colecciones:
//
//	users/{uid}/dogs/{dogId}
//	users/{uid}/dogs/{dogId}/{notes|poop|weights|walks}/{id}
//	users/{uid}/reminders/{reminderId}
const (
	CollectionUsers     = "users"
	CollectionDogs      = "dogs"
	CollectionNotes     = "notes"
	CollectionPoop      = "poop"
	CollectionWeights   = "weights"
	CollectionWalks     = "walks"
	CollectionReminders = "reminders"
)

// UserRoot: colección directamente bajo users/{uid} (dogs, reminders).
func UserRoot(name string) PathFunc {
	return func(uid, _ string) (string, error) {
		return remotestore.Join(CollectionUsers, uid, name)
	}
}

// DogChild: subcolección bajo users/{uid}/dogs/{dogId}.
func DogChild(name string) PathFunc {
	return func(uid, dogID string) (string, error) {
		if strings.TrimSpace(dogID) == "" {
			return "", ErrInvalidInput
		}
		return remotestore.Join(CollectionUsers, uid, CollectionDogs, dogID, name)
	}
}
