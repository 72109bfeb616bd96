package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordValidator_TableTest(t *testing.T) {
	v := NewPasswordValidator()

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{
			name:     "7 characters → too short",
			password: "11AAaa!",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "empty → too short",
			password: "",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "73 characters → too long",
			password: strings.Repeat("*", 73),
			wantErr:  ErrPasswordTooLong,
		},
		{
			name:     "72 characters passes length but fails complexity",
			password: strings.Repeat("*", 72),
			wantErr:  ErrPasswordTooSimple,
		},
		{
			name:     "starts with space",
			password: " 11AAaa!!",
			wantErr:  ErrPasswordStartsOrEndsWithSpace,
		},
		{
			name:     "ends with space",
			password: "11AAaa!! ",
			wantErr:  ErrPasswordStartsOrEndsWithSpace,
		},
		{
			name:     "no complexity",
			password: "aaaaaaaa",
			wantErr:  ErrPasswordTooSimple,
		},
		{
			name:     "missing special character",
			password: "11AAaabb",
			wantErr:  ErrPasswordTooSimple,
		},
		{
			name:     "missing digit",
			password: "AAaabb!!",
			wantErr:  ErrPasswordTooSimple,
		},
		{
			name:     "valid password",
			password: "11AAaa!!",
		},
		{
			name:     "valid with every special character",
			password: "1A a!@#$%^&z",
			wantErr:  nil,
		},
		{
			// 7 characters but 9 bytes: the minimum counts characters
			name:     "7 non-ASCII characters → too short",
			password: "ñÑ1!aB2",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "8 characters with non-ASCII letters → valid",
			password: "ñÑ1!aB2z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Rule precedence: the first failing rule wins even when several are violated.
func TestPasswordValidator_Precedence(t *testing.T) {
	v := NewPasswordValidator()

	// too short AND too simple → short wins
	assert.ErrorIs(t, v.Validate("aaa"), ErrPasswordTooShort)

	// leading space AND too simple → space wins
	assert.ErrorIs(t, v.Validate(" aaaaaaaa"), ErrPasswordStartsOrEndsWithSpace)

	// too long AND has spaces at both ends → long wins
	padded := " " + strings.Repeat("a", 73) + " "
	assert.ErrorIs(t, v.Validate(padded), ErrPasswordTooLong)
}

func TestPasswordValidator_Idempotent(t *testing.T) {
	v := NewPasswordValidator()

	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, v.Validate("11AAaa!"), ErrPasswordTooShort)
		require.NoError(t, v.Validate("11AAaa!!"))
	}
}

func TestPolicyViolationMessages(t *testing.T) {
	assert.Equal(t, "Password must be longer than 8 characters", ErrPasswordTooShort.Error())
	assert.Equal(t, "Password must be 72 characters or fewer", ErrPasswordTooLong.Error())
	assert.Equal(t, "Password must not start or end with spaces", ErrPasswordStartsOrEndsWithSpace.Error())
	assert.Equal(t, "Password must contain 1 upper case, lower case, number and special character", ErrPasswordTooSimple.Error())
}

func TestIsPolicyViolation(t *testing.T) {
	assert.True(t, IsPolicyViolation(ErrPasswordTooShort))
	assert.True(t, IsPolicyViolation(ErrPasswordTooSimple))
	assert.False(t, IsPolicyViolation(assert.AnError))
	assert.False(t, IsPolicyViolation(nil))
}
