package models

import "time"

// User represents an account record as stored in the thingful_users table.
// Sensitive fields must never be exposed outside trusted boundaries; use
// [NewUserResponse] when sending an account to a client.
type User struct {
	// ID is the unique identifier assigned by the store on creation.
	ID int64 `json:"id"`

	// UserName is the unique, case-sensitive login identifier.
	// Uniqueness is enforced by the database at insert time.
	UserName string `json:"user_name"`

	// FullName is the display name of the user. Required, not unique.
	FullName string `json:"full_name"`

	// Nickname is an optional display string. It is nil until the user sets
	// one; the column stays NULL on registration.
	Nickname *string `json:"-"`

	// Password holds the bcrypt hash of the user's password.
	// This value MUST never be plaintext and is excluded from JSON.
	Password string `json:"-"`

	// DateCreated is the timestamp assigned by the store at insertion,
	// always expressed in UTC.
	DateCreated time.Time `json:"date_created"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "thingful_users"
}

// Principal is the resolved identity attached to an authenticated request.
// It lives only for the duration of one request and carries no credential
// material.
type Principal struct {
	UserID   int64
	UserName string
}
