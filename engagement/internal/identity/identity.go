// Package identity resolves the calling user from transport credentials.
package identity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"ugcengagement/engagement/pkg/model"
)

// Header carries a pre-authenticated user id.
const Header = "X-User-Id"

var (
	// ErrMissing is returned when a request carries no identity.
	ErrMissing = errors.New("user identity is missing")
	// ErrInvalidToken is returned for a bearer token that fails verification.
	ErrInvalidToken = errors.New("invalid token")
)

// Resolver extracts a user id. With a secret it trusts only HS256 bearer
// tokens; otherwise it trusts the user id header as is.
type Resolver struct {
	secret []byte
}

// NewResolver creates a resolver. An empty secret disables token checks.
func NewResolver(secret string) *Resolver {
	return &Resolver{secret: []byte(secret)}
}

// RequiresToken reports whether a bearer token is mandatory.
func (r *Resolver) RequiresToken() bool {
	return len(r.secret) > 0
}

// Resolve returns the user id from the authorization value when tokens
// are required, or from the user id header value otherwise.
func (r *Resolver) Resolve(authorization, userID string) (model.UserID, error) {
	if !r.RequiresToken() {
		if userID = strings.TrimSpace(userID); userID == "" {
			return "", ErrMissing
		}
		return model.UserID(userID), nil
	}
	raw, ok := strings.CutPrefix(strings.TrimSpace(authorization), "Bearer ")
	if !ok || raw == "" {
		return "", ErrMissing
	}
	sub, err := r.subject(raw)
	if err != nil {
		return "", err
	}
	if userID != "" && userID != sub {
		return "", fmt.Errorf("%w: subject does not match user id", ErrInvalidToken)
	}
	return model.UserID(sub), nil
}

func (r *Resolver) subject(raw string) (string, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return r.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if sub == "" {
		// Tokens issued by the auth service carry the user in "username".
		if v, ok := claims["username"].(string); ok {
			sub = v
		}
	}
	if sub == "" {
		return "", fmt.Errorf("%w: no subject", ErrInvalidToken)
	}
	return sub, nil
}
