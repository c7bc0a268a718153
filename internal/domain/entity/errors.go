package entity

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated = errors.New("user not logged in")
	ErrRemoteFailure    = errors.New("remote failure")
	ErrInvalidInput     = errors.New("invalid input")
)

// remoteFailure envuelve el error del store conservando su mensaje.
func remoteFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrRemoteFailure, op, err)
}
