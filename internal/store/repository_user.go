package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/thingfulapp/thingful-server/internal/logger"
	"github.com/thingfulapp/thingful-server/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "thingful_users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with store-assigned fields (ID, DateCreated, NULL nickname).
//
// Uniqueness is enforced by the database constraint inside this single
// INSERT, not by a separate check-then-insert step, so two concurrent
// registrations with the same username cannot both succeed: the loser gets
// [ErrUserNameAlreadyExists] exactly like a sequential duplicate would.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserNameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUserRow(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUserNameAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByUserName retrieves the account whose user_name equals userName.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByUserName(ctx context.Context, userName string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByUserNameQuery(userName)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUserName").Msg("error: building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findUser(ctx, query, args)
}

// FindUserByID retrieves the account with the given id.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByIDQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findUser(ctx, query, args)
}

func (r *userRepository) findUser(ctx context.Context, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	found, err := scanUserRow(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: querying user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func scanUserRow(row *sql.Row) (models.User, error) {
	var user models.User
	var nickname sql.NullString

	if err := row.Scan(&user.ID, &user.UserName, &user.FullName, &nickname, &user.Password, &user.DateCreated); err != nil {
		return models.User{}, err
	}

	if nickname.Valid {
		user.Nickname = &nickname.String
	}

	return user, nil
}
