// Package utils provides general-purpose helpers shared across the
// application: type-safe context keys, JWT token generation and validation,
// and HTTP response writing.
package utils

import (
	"context"

	"github.com/thingfulapp/thingful-server/models"
)

// contextKey is a private type for context keys. Using a dedicated type
// instead of a plain string prevents collisions with other packages that may
// use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the authentication middleware
// stores the resolved [models.Principal] of the current request.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.PrincipalCtxKey, principal)
var PrincipalCtxKey = contextKey("principal")

// GetPrincipalFromContext retrieves the authenticated principal from the
// context.
//
// The ok flag is false when the value is missing or has an unexpected type,
// which means the request did not pass through the authentication gate.
func GetPrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	principal, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	return principal, ok
}
