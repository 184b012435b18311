package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT with the user id extracted from its subject.
//
// It embeds [jwt.Token] for low-level operations and [jwt.RegisteredClaims]
// so it can be passed to jwt.ParseWithClaims directly.
type Token struct {
	// Token is the underlying JWT. Only the compact string form is
	// meaningful outside the process.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the "sub" claim. Lists owned by this id are visible to the
	// token holder.
	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
