package jwtverifier

import (
	"context"
	"errors"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/go-playground/assert/v2"
)

func TestVerifier_IssueAndVerify(t *testing.T) {
	v := New(Config{Secret: "s3cret", Issuer: "paws"})

	tok, err := v.Issue("u1", "rex@example.com", time.Hour)
	assert.Equal(t, err, nil)

	claims, err := v.Verify(context.Background(), tok)
	assert.Equal(t, err, nil)
	assert.Equal(t, claims.UserID, "u1")
	assert.Equal(t, claims.Email, "rex@example.com")
}

func TestVerifier_RejectsWrongSecretAndExpired(t *testing.T) {
	v := New(Config{Secret: "s3cret"})
	other := New(Config{Secret: "other"})

	tok, err := other.Issue("u1", "", time.Hour)
	assert.Equal(t, err, nil)
	_, err = v.Verify(context.Background(), tok)
	assert.Equal(t, errors.Is(err, ErrInvalidToken), true)

	v.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := v.Issue("u1", "", time.Hour)
	assert.Equal(t, err, nil)
	_, err = v.Verify(context.Background(), expired)
	assert.Equal(t, errors.Is(err, ErrInvalidToken), true)
}

func TestVerifier_RejectsOtherAlgorithmsAndMissingSubject(t *testing.T) {
	v := New(Config{Secret: "s3cret"})

	none, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{"sub": "u1"}).
		SignedString(gojwt.UnsafeAllowNoneSignatureType)
	assert.Equal(t, err, nil)
	_, err = v.Verify(context.Background(), none)
	assert.Equal(t, errors.Is(err, ErrInvalidToken), true)

	noSub, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{"email": "x@y"}).
		SignedString([]byte("s3cret"))
	assert.Equal(t, err, nil)
	_, err = v.Verify(context.Background(), noSub)
	assert.Equal(t, errors.Is(err, ErrInvalidToken), true)

	legacy, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{"user_id": "u9"}).
		SignedString([]byte("s3cret"))
	assert.Equal(t, err, nil)
	claims, err := v.Verify(context.Background(), legacy)
	assert.Equal(t, err, nil)
	assert.Equal(t, claims.UserID, "u9")
}

func TestVerifier_NotConfigured(t *testing.T) {
	v := New(Config{})
	_, err := v.Verify(context.Background(), "abc")
	assert.Equal(t, err, ErrNotConfigured)

	v = New(Config{Secret: "x"})
	_, err = v.Verify(context.Background(), "  ")
	assert.Equal(t, err, ErrTokenEmpty)
}
