package service

import (
	"errors"
	"fmt"
)

var (
	// ErrIncorrectCredentials is returned by Login for an unknown username or
	// a wrong password alike; the two cases are indistinguishable to the
	// caller on purpose. The message is client-facing.
	ErrIncorrectCredentials = errors.New("Incorrect user_name or password")

	// ErrTokenCreationFailed wraps JWT signing failures.
	ErrTokenCreationFailed = errors.New("token creation failed")
)

// Token verification failures. ParseToken keeps the kinds distinguishable
// for diagnostics and tests; the HTTP layer collapses all of them (and an
// unresolvable subject) into one generic unauthorized response so that a
// caller probing the gate learns nothing about why a token was rejected.
var (
	// ErrTokenMalformed is returned when the string cannot be parsed as a
	// JWT at all.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenBadSignature is returned when the signature does not verify
	// against the configured sign key, including structurally valid tokens
	// signed with someone else's secret.
	ErrTokenBadSignature = errors.New("token signature is invalid")

	// ErrTokenExpired is returned when the current time is outside the
	// token's validity window.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenInvalid covers every remaining verification failure, such as
	// an issuer mismatch.
	ErrTokenInvalid = errors.New("token is invalid")
)

// MissingFieldError reports the first required request-body field found
// absent. Its message is client-facing.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Missing '%s' in request body", e.Field)
}
