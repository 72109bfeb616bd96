// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"net/http"

	"github.com/thingfulapp/thingful-server/internal/utils"
)

// Client-facing error messages. Every 4xx body on this API is a JSON object
// of the form {"error": "<message>"}; these constants hold the messages
// whose exact wording is part of the API contract.
const (
	// msgMissingBearerToken is the 401 body for a request that carries no
	// Authorization header at all.
	msgMissingBearerToken = "Missing bearer token"

	// msgUnauthorizedRequest is the 401 body for every other authentication
	// failure: a malformed header, a token that does not verify, or a token
	// whose subject no longer resolves to an account. The cases are
	// deliberately indistinguishable to the client.
	msgUnauthorizedRequest = "Unauthorized request"

	// msgUsernameAlreadyTaken is the 400 body for a registration attempt
	// with a username that is already in use.
	msgUsernameAlreadyTaken = "Username already taken"

	// msgUserNotFound is the 404 body for a lookup of a nonexistent user.
	msgUserNotFound = "User doesn't exist"

	// msgThingNotFound is the 404 body for a lookup of a nonexistent thing.
	msgThingNotFound = "Thing doesn't exist"

	// msgInvalidJSON is the 400 body for a request whose body cannot be
	// decoded as JSON.
	msgInvalidJSON = "Invalid JSON was passed"
)

// ErrInvalidAuthorizationHeader is returned when the "Authorization" header
// is present but does not follow the `Bearer <token>` scheme.
var ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

// writeError renders the API's uniform error envelope.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSONError(w, message, statusCode)
}
