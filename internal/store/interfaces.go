package store

import (
	"context"

	"github.com/thingfulapp/thingful-server/models"
)

// UserRepository is the durable credential store: one row per account,
// keyed by a unique username.
type UserRepository interface {
	// CreateUser persists a new account in a single constrained insert. The
	// database uniqueness constraint on user_name is the only uniqueness
	// check; a violation is reported as ErrUserNameAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	FindUserByUserName(ctx context.Context, userName string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// ThingRepository serves the read-only things/reviews resources fronted by
// the authentication gate.
type ThingRepository interface {
	ListThings(ctx context.Context) ([]models.Thing, error)
	FindThingByID(ctx context.Context, thingID int64) (models.Thing, error)
	ListThingReviews(ctx context.Context, thingID int64) ([]models.Review, error)
}
