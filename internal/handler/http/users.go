package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/thingfulapp/thingful-server/internal/logger"
	"github.com/thingfulapp/thingful-server/internal/service"
	"github.com/thingfulapp/thingful-server/internal/store"
	"github.com/thingfulapp/thingful-server/internal/utils"
	"github.com/thingfulapp/thingful-server/internal/validators"
	"github.com/thingfulapp/thingful-server/models"
)

// registerUser creates a new account.
//
// On success it responds 201 Created with a Location header pointing at the
// new resource and a sanitized representation of the account; the stored
// password hash never leaves the server. Validation failures respond 400
// with the violated rule's message, including "Username already taken" for
// a duplicate username regardless of whether the duplicate was detected
// sequentially or lost a race to a concurrent insert.
func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		writeError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.UserService.Register(ctx, req)
	if err != nil {
		var missing *service.MissingFieldError

		switch {
		case errors.As(err, &missing):
			log.Debug().Str("field", missing.Field).Msg("registration with missing field")
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		case validators.IsPolicyViolation(err):
			log.Debug().Err(err).Msg("registration with weak password")
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNameAlreadyExists):
			writeError(w, msgUsernameAlreadyTaken, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Location", fmt.Sprintf("/api/users/%d", registeredUser.ID))
	utils.WriteJSON(w, models.NewUserResponse(registeredUser), http.StatusCreated)
}

// getUser returns the sanitized representation of a single account.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		writeError(w, msgUserNotFound, http.StatusNotFound)
		return
	}

	if principal, ok := utils.GetPrincipalFromContext(ctx); ok {
		log.Debug().Str("requested_by", principal.UserName).Int64("user_id", userID).Msg("user lookup")
	}

	user, err := h.services.UserService.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			writeError(w, msgUserNotFound, http.StatusNotFound)
			return
		}

		log.Err(err).Msg("unexpected error occurred during user lookup")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.NewUserResponse(user), http.StatusOK)
}
