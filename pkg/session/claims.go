package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformedToken = errors.New("malformed access token")

// Claims is the structured payload the backend embeds in access tokens.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Identity is the user view derived from a decoded access token.
type Identity struct {
	ID       string
	Email    string
	Role     string
	IssuedAt time.Time
	Expiry   time.Time
}

// DecodeClaims parses a token's payload without verifying the signature.
// The client holds no signing secret: verification is the backend's job, the
// client only needs the embedded expiry and identity.
func DecodeClaims(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrMalformedToken
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, ErrMalformedToken
	}

	return claims, nil
}

// Identity flattens the claims into the cached-profile shape.
func (c *Claims) Identity() *Identity {
	id := &Identity{
		ID:    c.Subject,
		Email: c.Email,
		Role:  c.Role,
	}
	if c.IssuedAt != nil {
		id.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		id.Expiry = c.ExpiresAt.Time
	}
	return id
}

// expired reports whether the claims' expiry is at or before now. Claims
// without an expiry are treated as expired: the backend always sets one.
func (c *Claims) expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return true
	}
	return !c.ExpiresAt.Time.After(now)
}
