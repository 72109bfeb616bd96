package service

import (
	"context"

	"github.com/thingfulapp/thingful-server/models"
)

// AuthService owns the bearer-token lifecycle: issuing tokens on login and
// verifying them on every protected request.
type AuthService interface {
	// Login authenticates an existing account by username and password.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// CreateToken issues a signed JWT whose subject is the user's username.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies a raw JWT string. Failure kinds are the
	// distinguishable sentinels ErrTokenMalformed, ErrTokenBadSignature,
	// ErrTokenExpired, and ErrTokenInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService owns account creation and lookup.
type UserService interface {
	// Register runs the account-creation pipeline: required-field presence,
	// password policy, hashing, and the constrained insert — each step
	// short-circuiting on failure.
	Register(ctx context.Context, req models.RegisterUserRequest) (models.User, error)

	GetUser(ctx context.Context, userID int64) (models.User, error)
	GetUserByUserName(ctx context.Context, userName string) (models.User, error)
}

// ThingService serves the read-only things/reviews resources.
type ThingService interface {
	ListThings(ctx context.Context) ([]models.Thing, error)
	GetThing(ctx context.Context, thingID int64) (models.Thing, error)
	ListThingReviews(ctx context.Context, thingID int64) ([]models.Review, error)
}
