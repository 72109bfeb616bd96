package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thingfulapp/thingful-server/internal/config"
	"github.com/thingfulapp/thingful-server/internal/logger"
	"github.com/thingfulapp/thingful-server/internal/store"
	"github.com/thingfulapp/thingful-server/internal/utils"
	"github.com/thingfulapp/thingful-server/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService. It verifies
// credentials against the UserRepository and handles the JWT lifecycle.
type authService struct {
	// userRepository is the data-access layer used to look up accounts.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// It is process-wide configuration, injected once here and never
	// mutated; it is independent of the per-account bcrypt salts.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates an existing account.
//
// Required fields are checked in declaration order (user_name, password) and
// the first missing one short-circuits with a MissingFieldError. An unknown
// username and a wrong password both yield ErrIncorrectCredentials so the
// response does not reveal whether the account exists.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.UserName == nil {
		return models.User{}, &MissingFieldError{Field: "user_name"}
	}
	if req.Password == nil {
		return models.User{}, &MissingFieldError{Field: "password"}
	}

	foundUser, err := a.userRepository.FindUserByUserName(ctx, *req.UserName)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("user_name", *req.UserName).Msg("login attempt for unknown user")
			return models.User{}, ErrIncorrectCredentials
		}

		log.Err(err).Msg("user search by user_name failed")
		return models.User{}, fmt.Errorf("user search by user_name failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(*req.Password)); err != nil {
		log.Debug().Int64("id", foundUser.ID).Str("user_name", foundUser.UserName).Msg("wrong password")
		return models.User{}, ErrIncorrectCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given account.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim and the username as the "sub"
// claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserName, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string, verifying the signature,
// expiry, and issuer.
//
// Verification failures are classified into the service's sentinel kinds so
// that diagnostics and tests can tell them apart; callers facing clients
// must collapse all of them into one generic unauthorized outcome.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return models.Token{}, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return models.Token{}, ErrTokenBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Token{}, ErrTokenExpired
		default:
			return models.Token{}, ErrTokenInvalid
		}
	}

	return token, nil
}
