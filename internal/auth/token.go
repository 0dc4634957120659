// Package auth issues and verifies the HS256 bearer tokens that carry the
// signed-in actor.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/pkg/models"
)

var (
	errMissingAuthorization = errors.New("missing authorization header")
	errBadAuthorization     = errors.New("malformed authorization header")
	errInvalidClaims        = errors.New("invalid token claims")
)

type Claims struct {
	Name string         `json:"name"`
	Role constants.Role `json:"role"`
	jwt.RegisteredClaims
}

type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{"HS256"})),
	}
}

// Issue signs a token for actor valid for ttl.
func Issue(secret string, actor model.Actor, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret must not be empty")
	}
	now := time.Now()
	claims := Claims{
		Name: actor.Name,
		Role: actor.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ActorFromHeader extracts the actor from an "Authorization: Bearer" value.
func (v *Verifier) ActorFromHeader(h string) (model.Actor, error) {
	if h == "" {
		return model.Actor{}, errMissingAuthorization
	}
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return model.Actor{}, errBadAuthorization
	}
	return v.Actor(strings.TrimSpace(token))
}

func (v *Verifier) Actor(token string) (model.Actor, error) {
	var claims Claims
	_, err := v.parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return v.secret, nil
	})
	if err != nil {
		return model.Actor{}, fmt.Errorf("parse token: %w", err)
	}

	if claims.Subject == "" || !claims.Role.Valid() {
		return model.Actor{}, errInvalidClaims
	}

	return model.Actor{ID: claims.Subject, Name: claims.Name, Role: claims.Role}, nil
}

// Peek reads the actor from a token without checking its signature. Clients
// use it to decide what to offer locally; the server still verifies.
func Peek(token string) (model.Actor, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return model.Actor{}, fmt.Errorf("parse token: %w", err)
	}
	if claims.Subject == "" || !claims.Role.Valid() {
		return model.Actor{}, errInvalidClaims
	}
	return model.Actor{ID: claims.Subject, Name: claims.Name, Role: claims.Role}, nil
}
