package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/thingfulapp/thingful-server/internal/logger"
	"github.com/thingfulapp/thingful-server/internal/utils"
	"github.com/thingfulapp/thingful-server/models"
)

// requireAuth is an HTTP middleware that guards protected endpoints with
// JWT bearer-token authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, validates it via [service.AuthService.ParseToken], resolves the
// token's subject to an account, and — on success — stores the
// authenticated principal in the request context under
// [utils.PrincipalCtxKey] before delegating to the next handler.
//
// A request without an Authorization header is rejected with 401 and the
// body {"error": "Missing bearer token"}. Every other failure — a header
// that is not `Bearer <token>`, a token that does not verify (malformed,
// bad signature, expired, wrong issuer), or a subject that no longer
// resolves to an account — is rejected with 401 and the single body
// {"error": "Unauthorized request"}, so the response never reveals which
// check failed.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Msg("request without `Authorization` header")
			writeError(w, msgMissingBearerToken, http.StatusUnauthorized)
			return
		}

		tokenString, err := getBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Msg("bad `Authorization` header")
			writeError(w, msgUnauthorizedRequest, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()

		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token verification failed")
			writeError(w, msgUnauthorizedRequest, http.StatusUnauthorized)
			return
		}

		userName, err := token.GetUserName()
		if err != nil {
			log.Debug().Err(err).Msg("token without subject")
			writeError(w, msgUnauthorizedRequest, http.StatusUnauthorized)
			return
		}

		// The subject is re-resolved on every request, so a token issued for
		// a since-deleted account stops working immediately.
		user, err := h.services.UserService.GetUserByUserName(ctx, userName)
		if err != nil {
			log.Debug().Err(err).Str("user_name", userName).Msg("token subject does not resolve to an account")
			writeError(w, msgUnauthorizedRequest, http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.PrincipalCtxKey, models.Principal{
			UserID:   user.ID,
			UserName: user.UserName,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getBearerToken extracts the token string from a raw "Authorization"
// header value.
//
// The header must follow the bearer scheme exactly:
//
//	Authorization: Bearer <token>
//
// Any other shape — a different scheme, a missing token, extra parts —
// yields [ErrInvalidAuthorizationHeader].
func getBearerToken(authHeader string) (string, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrInvalidAuthorizationHeader
	}

	return tokenString, nil
}
