package auth

import (
	"context"
	"strings"
)

// IdentityProvider resuelve el usuario logueado para la operación en curso.
// ok=false equivale a "no hay sesión".
type IdentityProvider interface {
	CurrentUserID(ctx context.Context) (string, bool)
}

// StaticIdentity devuelve siempre el mismo usuario (CLI, tests).
type StaticIdentity string

func (s StaticIdentity) CurrentUserID(context.Context) (string, bool) {
	uid := strings.TrimSpace(string(s))
	return uid, uid != ""
}
