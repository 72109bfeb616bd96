package validators

import "errors"

// Password policy violations. The message text of each sentinel is shown to
// the client verbatim, so it must not be changed without changing the API
// contract.
var (
	ErrPasswordTooShort = errors.New("Password must be longer than 8 characters")

	ErrPasswordTooLong = errors.New("Password must be 72 characters or fewer")

	ErrPasswordStartsOrEndsWithSpace = errors.New("Password must not start or end with spaces")

	ErrPasswordTooSimple = errors.New("Password must contain 1 upper case, lower case, number and special character")
)

// IsPolicyViolation reports whether err is one of the password policy
// sentinels. Handlers use it to classify a registration failure as a
// client-caused validation error.
func IsPolicyViolation(err error) bool {
	return errors.Is(err, ErrPasswordTooShort) ||
		errors.Is(err, ErrPasswordTooLong) ||
		errors.Is(err, ErrPasswordStartsOrEndsWithSpace) ||
		errors.Is(err, ErrPasswordTooSimple)
}
