package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// The "sub" claim carries the username of the account the token was issued
// for; UserID rides along as a private claim for diagnostics but only the
// subject is authoritative when resolving the token to an account.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON because only the compact string form is
	// meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, iss, ...) as defined by RFC 7519.
	jwt.RegisteredClaims

	// UserID is the account identifier carried as a private claim.
	UserID int64 `json:"user_id,omitempty"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserName is the subject extracted from a parsed token. It is an
	// internal server-side cache and never serialized.
	UserName string `json:"-"`
}

// GetUserName extracts the username from the token's "sub" (subject) claim.
// Returns an error if the subject claim is missing or empty.
func (t *Token) GetUserName() (string, error) {
	userName, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if userName == "" {
		return "", errors.New("empty subject in token")
	}

	return userName, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
