// Package jwt signs and verifies the HS256 bearer tokens carried in the
// auth cookie.
package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the only privileged role the token can carry.
const RoleAdmin = "admin"

const defaultSecret = "inklet-secret-change-me"

var secret = []byte(defaultSecret)

// Verification failures callers must tell apart to produce the right
// machine-readable error code.
var (
	ErrExpired          = errors.New("token expired")
	ErrInvalidSignature = errors.New("token signature mismatch")
	ErrMalformed        = errors.New("token malformed")
	ErrInvalid          = errors.New("token invalid")
)

// SetSecret configures the signing secret (call on startup).
func SetSecret(s string) {
	if s != "" {
		secret = []byte(s)
	}
}

// Claims is the token payload: subject id plus role.
type Claims struct {
	Role string `json:"role"`
	jwtlib.RegisteredClaims
}

// Sign issues a token for the given subject and role.
func Sign(subject, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Parse verifies a token string and returns its claims. The error is one of
// ErrExpired, ErrInvalidSignature, ErrMalformed or ErrInvalid.
func Parse(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwtlib.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwtlib.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		case errors.Is(err, jwtlib.ErrTokenMalformed):
			return nil, ErrMalformed
		default:
			return nil, ErrInvalid
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
