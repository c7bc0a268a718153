package jwtverifier

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"paws-sync/internal/ports/auth"

	gojwt "github.com/golang-jwt/jwt/v5"
)

var (
	ErrNotConfigured = errors.New("jwt verifier not configured")
	ErrTokenEmpty    = errors.New("token is empty")
	ErrInvalidToken  = errors.New("invalid token")
)

// Config del verificador HS256. Issuer es opcional; si se define, se exige.
type Config struct {
	Secret string
	Issuer string
	Leeway time.Duration
}

// Verifier implementa auth.AuthVerifier validando tokens firmados con un
// secreto compartido. El usuario sale de "sub" o, si falta, de "user_id".
type Verifier struct {
	secret []byte
	parser *gojwt.Parser
	issuer string
	now    func() time.Time
}

func New(cfg Config) *Verifier {
	opts := []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
	}
	if iss := strings.TrimSpace(cfg.Issuer); iss != "" {
		opts = append(opts, gojwt.WithIssuer(iss))
	}
	if cfg.Leeway > 0 {
		opts = append(opts, gojwt.WithLeeway(cfg.Leeway))
	}
	return &Verifier{
		secret: []byte(strings.TrimSpace(cfg.Secret)),
		parser: gojwt.NewParser(opts...),
		issuer: strings.TrimSpace(cfg.Issuer),
		now:    time.Now,
	}
}

func (v *Verifier) IsConfigured() bool {
	return v != nil && len(v.secret) > 0
}

func (v *Verifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if !v.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	claims := gojwt.MapClaims{}
	_, err := v.parser.ParseWithClaims(token, claims, func(*gojwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	uid := stringClaim(claims, "sub")
	if uid == "" {
		uid = stringClaim(claims, "user_id")
	}
	if uid == "" {
		return auth.Claims{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return auth.Claims{
		UserID: uid,
		Email:  stringClaim(claims, "email"),
	}, nil
}

// Issue firma un token para userID (CLI de desarrollo y tests).
func (v *Verifier) Issue(userID, email string, ttl time.Duration) (string, error) {
	if !v.IsConfigured() {
		return "", ErrNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", errors.New("userID required")
	}

	now := v.now()
	claims := gojwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
	}
	if ttl > 0 {
		claims["exp"] = now.Add(ttl).Unix()
	}
	if e := strings.TrimSpace(email); e != "" {
		claims["email"] = e
	}
	if v.issuer != "" {
		claims["iss"] = v.issuer
	}
	return gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(v.secret)
}

func stringClaim(c gojwt.MapClaims, key string) string {
	s, _ := c[key].(string)
	return strings.TrimSpace(s)
}
