package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/thingfulapp/thingful-server/internal/logger"
	"github.com/thingfulapp/thingful-server/internal/service"
	"github.com/thingfulapp/thingful-server/internal/utils"
	"github.com/thingfulapp/thingful-server/models"
)

// login exchanges a username and password for a bearer token.
//
// A missing field responds 400 with the field named; bad credentials
// respond 400 with "Incorrect user_name or password" whether the username
// is unknown or the password is wrong. On success the signed JWT is
// returned as {"authToken": "<token>"}.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		writeError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		var missing *service.MissingFieldError

		switch {
		case errors.As(err, &missing):
			log.Debug().Str("field", missing.Field).Msg("login with missing field")
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrIncorrectCredentials):
			writeError(w, service.ErrIncorrectCredentials.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{AuthToken: token.SignedString}, http.StatusOK)
}
