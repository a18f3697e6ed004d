package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionToken wraps a signed session JWT.
//
// The subject claim carries the username and the ID (jti) claim carries the
// server-side session identifier, which is what logout revokes.
type SessionToken struct {
	// Token is the underlying JWT. Excluded from JSON serialization because
	// only the compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims gives access to the standard claim set.
	jwt.RegisteredClaims

	// SignedString is the compact JWS form placed in the session cookie.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *SessionToken) String() string {
	return t.SignedString
}
