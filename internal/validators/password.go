// SPDX-License-Identifier: Apache-2.0

// Package validators encodes the input validation rules of the application,
// decoupled from transport and storage so they stay reusable and testable.
package validators

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// specialCharacters is the set a password must draw at least one
// character from to satisfy the complexity rule.
const specialCharacters = "!@#$%^&"

// PasswordValidator checks a candidate password against the registration
// password policy.
type PasswordValidator interface {
	// Validate returns nil when the password satisfies the policy, or the
	// sentinel of the first violated rule. Rules are checked in a fixed
	// precedence order and checking stops at the first failure.
	Validate(password string) error
}

type passwordValidator struct{}

// NewPasswordValidator constructs the standard password policy:
//  1. at least 8 characters
//  2. at most 72 characters (the bcrypt input limit)
//  3. no leading or trailing whitespace
//  4. at least one upper case letter, lower case letter, digit,
//     and special character
//
// Validate is a pure function: it has no side effects and repeated calls
// with the same input always yield the same verdict.
func NewPasswordValidator() PasswordValidator {
	return &passwordValidator{}
}

func (v *passwordValidator) Validate(password string) error {
	// the minimum counts characters; the maximum counts bytes, because 72
	// bytes is bcrypt's input limit
	if utf8.RuneCountInString(password) < 8 {
		return ErrPasswordTooShort
	}

	if len(password) > 72 {
		return ErrPasswordTooLong
	}

	if strings.TrimSpace(password) != password {
		return ErrPasswordStartsOrEndsWithSpace
	}

	if !hasRequiredCharacterClasses(password) {
		return ErrPasswordTooSimple
	}

	return nil
}

func hasRequiredCharacterClasses(password string) bool {
	var hasUpper, hasLower, hasDigit, hasSpecial bool

	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(specialCharacters, r):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSpecial
}
