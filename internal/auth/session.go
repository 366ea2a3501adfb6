// internal/auth/session.go
package auth

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidSession indicates the presented admin token did not verify.
var ErrInvalidSession = errors.New("invalid admin session")

// Sessions issues and verifies admin session tokens. Keys are generated
// per process: restarting the server signs every admin out, which is
// the wanted behavior for an operator console.
type Sessions struct {
	privateKey ed25519.PrivateKey
	publicKey  ed25519.PublicKey
	expiry     time.Duration
}

// NewSessions generates a fresh ed25519 key pair. expiry of zero means
// tokens never expire.
func NewSessions(expiry time.Duration) (*Sessions, error) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session key pair: %w", err)
	}
	return &Sessions{privateKey: priv, publicKey: pub, expiry: expiry}, nil
}

// Expiry returns the configured token lifetime.
func (s *Sessions) Expiry() time.Duration { return s.expiry }

// Issue creates a signed admin session token for the given operator
// name.
func (s *Sessions) Issue(operator string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  operator,
		"role": "admin",
	}
	// Zero means no expiry; any other value, including a negative one,
	// is stamped so misconfiguration cannot mint eternal tokens.
	if s.expiry != 0 {
		claims["exp"] = time.Now().Add(s.expiry).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	return token.SignedString(s.privateKey)
}

// Verify checks a session token and returns the operator name.
func (s *Sessions) Verify(tokenString string) (string, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.publicKey, nil
	})
	if err != nil || !t.Valid {
		return "", ErrInvalidSession
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidSession
	}
	if role, _ := claims["role"].(string); role != "admin" {
		return "", ErrInvalidSession
	}
	operator, ok := claims["sub"].(string)
	if !ok {
		return "", ErrInvalidSession
	}
	return operator, nil
}
