package models

import "time"

// UserResponse is the sanitized outward representation of an account.
// It contains every User field except the password hash; Nickname is
// rendered as the empty string when the account has none.
type UserResponse struct {
	ID          int64     `json:"id"`
	UserName    string    `json:"user_name"`
	FullName    string    `json:"full_name"`
	Nickname    string    `json:"nickname"`
	DateCreated time.Time `json:"date_created"`
}

// NewUserResponse sanitizes a stored account for client consumption.
func NewUserResponse(u User) UserResponse {
	nickname := ""
	if u.Nickname != nil {
		nickname = *u.Nickname
	}

	return UserResponse{
		ID:          u.ID,
		UserName:    u.UserName,
		FullName:    u.FullName,
		Nickname:    nickname,
		DateCreated: u.DateCreated.UTC(),
	}
}

// LoginResponse carries the bearer token issued by a successful login.
type LoginResponse struct {
	AuthToken string `json:"authToken"`
}

// ErrorResponse is the uniform JSON error body used by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
