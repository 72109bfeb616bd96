package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thingfulapp/thingful-server/models"
	"golang.org/x/crypto/bcrypt"
)

func validRegisterBody(t *testing.T) string {
	t.Helper()

	return jsonBody(t, map[string]string{
		"user_name": "demo",
		"password":  "P@ssw0rd!abc",
		"full_name": "Demo User",
	})
}

func TestRegisterUser_Success(t *testing.T) {
	fixture := newTestFixture(t)

	rr := fixture.do(t, http.MethodPost, "/api/users", validRegisterBody(t), "")

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp models.UserResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))

	assert.NotZero(t, resp.ID)
	assert.Equal(t, "demo", resp.UserName)
	assert.Equal(t, "Demo User", resp.FullName)
	assert.Equal(t, "", resp.Nickname)
	assert.False(t, resp.DateCreated.IsZero())

	assert.Equal(t, fmt.Sprintf("/api/users/%d", resp.ID), rr.Header().Get("Location"))

	// conspicuously absent from the body: the password in any form
	assert.NotContains(t, rr.Body.String(), "password")

	stored, err := fixture.userRepo.FindUserByUserName(context.Background(), "demo")
	require.NoError(t, err)
	assert.NotEqual(t, "P@ssw0rd!abc", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("P@ssw0rd!abc")))
}

func TestRegisterUser_ValidationFailures(t *testing.T) {
	tests := []struct {
		name     string
		body     map[string]string
		wantBody string
	}{
		{
			name:     "empty object reports user_name first",
			body:     map[string]string{},
			wantBody: "Missing 'user_name' in request body",
		},
		{
			name:     "missing password",
			body:     map[string]string{"user_name": "demo", "full_name": "Demo User"},
			wantBody: "Missing 'password' in request body",
		},
		{
			name:     "missing full_name",
			body:     map[string]string{"user_name": "demo", "password": "P@ssw0rd!abc"},
			wantBody: "Missing 'full_name' in request body",
		},
		{
			name:     "short password",
			body:     map[string]string{"user_name": "demo", "password": "aB1!", "full_name": "Demo User"},
			wantBody: "Password must be longer than 8 characters",
		},
		{
			name:     "leading space in password",
			body:     map[string]string{"user_name": "demo", "password": " P@ssw0rd!abc", "full_name": "Demo User"},
			wantBody: "Password must not start or end with spaces",
		},
		{
			name:     "simple password",
			body:     map[string]string{"user_name": "demo", "password": "passw0rdabc", "full_name": "Demo User"},
			wantBody: "Password must contain 1 upper case, lower case, number and special character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := newTestFixture(t)

			rr := fixture.do(t, http.MethodPost, "/api/users", jsonBody(t, tt.body), "")

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.wantBody, errorBody(t, rr))
		})
	}
}

func TestRegisterUser_InvalidJSON(t *testing.T) {
	fixture := newTestFixture(t)

	rr := fixture.do(t, http.MethodPost, "/api/users", "{not json", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid JSON was passed", errorBody(t, rr))
}

func TestRegisterUser_DuplicateUserName(t *testing.T) {
	fixture := newTestFixture(t)

	rr := fixture.do(t, http.MethodPost, "/api/users", validRegisterBody(t), "")
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = fixture.do(t, http.MethodPost, "/api/users", validRegisterBody(t), "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Username already taken", errorBody(t, rr))
}

// Two simultaneous registrations of the same username must end with exactly
// one 201 and one 400 "Username already taken"; the losing request is never
// retried into a second account.
func TestRegisterUser_ConcurrentDuplicate(t *testing.T) {
	fixture := newTestFixture(t)

	const attempts = 2
	codes := make([]int, attempts)
	bodies := make([]string, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rr := fixture.do(t, http.MethodPost, "/api/users", validRegisterBody(t), "")
			codes[i] = rr.Code
			bodies[i] = rr.Body.String()
		}(i)
	}
	wg.Wait()

	created, taken := 0, 0
	for i := 0; i < attempts; i++ {
		switch codes[i] {
		case http.StatusCreated:
			created++
		case http.StatusBadRequest:
			taken++
			assert.Contains(t, bodies[i], "Username already taken")
		default:
			t.Fatalf("unexpected status %d with body %s", codes[i], bodies[i])
		}
	}

	assert.Equal(t, 1, created)
	assert.Equal(t, 1, taken)
}

func TestGetUser(t *testing.T) {
	fixture := newTestFixture(t)
	user := fixture.seedUser(t, "demo", "P@ssw0rd!abc")
	bearer := fixture.bearerFor(t, user)

	t.Run("found", func(t *testing.T) {
		rr := fixture.do(t, http.MethodGet, fmt.Sprintf("/api/users/%d", user.ID), "", bearer)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp models.UserResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, user.ID, resp.ID)
		assert.Equal(t, "demo", resp.UserName)
	})

	t.Run("not found", func(t *testing.T) {
		rr := fixture.do(t, http.MethodGet, "/api/users/999", "", bearer)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "User doesn't exist", errorBody(t, rr))
	})

	t.Run("non-numeric id", func(t *testing.T) {
		rr := fixture.do(t, http.MethodGet, "/api/users/abc", "", bearer)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "User doesn't exist", errorBody(t, rr))
	})

	t.Run("requires a token", func(t *testing.T) {
		rr := fixture.do(t, http.MethodGet, fmt.Sprintf("/api/users/%d", user.ID), "", "")

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
