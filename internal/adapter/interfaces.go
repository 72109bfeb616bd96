// SPDX-License-Identifier: Apache-2.0

// Package adapter provides a client-side abstraction for communicating with
// the Thingful server.
//
// The primary abstraction is [APIClient], which decouples callers (such as
// the thingctl command) from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPAPIClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/thingfulapp/thingful-server/models"
)

// APIClient defines transport-agnostic communication with the Thingful
// server. Implementations are responsible for serialisation, bearer-token
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type APIClient interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called after a
	// successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account and returns its sanitized
	// representation as rendered by the server.
	Register(ctx context.Context, userName, password, fullName string) (models.UserResponse, error)

	// Login exchanges credentials for a bearer token. On success the token
	// is stored via SetToken and also returned.
	Login(ctx context.Context, userName, password string) (string, error)

	// ListThings fetches the public thing catalogue.
	ListThings(ctx context.Context) ([]models.Thing, error)

	// GetThing fetches a single thing. Requires a token.
	GetThing(ctx context.Context, thingID int64) (models.Thing, error)

	// ListThingReviews fetches the reviews of one thing. Requires a token.
	ListThingReviews(ctx context.Context, thingID int64) ([]models.Review, error)

	// GetUser fetches the sanitized representation of one account. Requires
	// a token.
	GetUser(ctx context.Context, userID int64) (models.UserResponse, error)
}
