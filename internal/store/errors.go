package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNameAlreadyExists is returned when an insert into thingful_users
	// trips the uniqueness constraint on user_name — including when two
	// concurrent registrations race for the same name and one loses.
	ErrUserNameAlreadyExists = errors.New("user name already taken")

	// ErrUserNotFound is returned when a lookup by username or id matches no
	// account.
	ErrUserNotFound = errors.New("no user was found")

	// ErrThingNotFound is returned when a lookup by thing id matches no row.
	ErrThingNotFound = errors.New("no thing was found")
)

// Low-level database operation errors, returned (or wrapped) by repository
// methods when a SQL-level operation fails before any domain logic applies.
var (
	// ErrBuildingSQLQuery is returned when the query builder cannot produce a
	// parameterised SQL statement.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for a reason the repository does not recognise.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
