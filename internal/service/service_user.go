package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/thingfulapp/thingful-server/internal/config"
	"github.com/thingfulapp/thingful-server/internal/logger"
	"github.com/thingfulapp/thingful-server/internal/store"
	"github.com/thingfulapp/thingful-server/internal/validators"
	"github.com/thingfulapp/thingful-server/models"
	"golang.org/x/crypto/bcrypt"
)

// registrationFields lists the required request-body fields in the order
// their absence is reported. The first missing field short-circuits the
// pipeline; later fields are not checked in the same call.
var registrationFields = []string{"user_name", "password", "full_name"}

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository    store.UserRepository
	passwordValidator validators.PasswordValidator

	// bcryptCost is the work factor for password hashing. Hashing with a
	// realistic cost takes tens of milliseconds; it runs inside the request's
	// own goroutine and therefore never stalls unrelated requests.
	bcryptCost int

	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository:    userRepository,
		passwordValidator: validators.NewPasswordValidator(),
		bcryptCost:        cfg.BcryptCost,
		logger:            logger,
	}
}

// Register runs the account-creation pipeline, each step short-circuiting
// on failure:
//
//  1. required-field presence, in declaration order;
//  2. password policy (the violated rule's sentinel is returned as-is, its
//     message is client-facing);
//  3. bcrypt hash with a fresh per-account salt;
//  4. a single constrained insert — uniqueness is enforced by the database,
//     so a concurrent duplicate surfaces as store.ErrUserNameAlreadyExists
//     here exactly like a sequential one, and is never retried.
//
// The returned User carries the store-assigned ID, NULL nickname, and UTC
// creation timestamp.
func (s *userService) Register(ctx context.Context, req models.RegisterUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	for _, field := range registrationFields {
		if !hasRegistrationField(req, field) {
			return models.User{}, &MissingFieldError{Field: field}
		}
	}

	if err := s.passwordValidator.Validate(*req.Password); err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), s.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		UserName: *req.UserName,
		FullName: *req.FullName,
		Password: string(hash),
	})
	if err != nil {
		if errors.Is(err, store.ErrUserNameAlreadyExists) {
			log.Debug().Str("user_name", *req.UserName).Msg("registration with taken user_name")
			return models.User{}, err
		}

		log.Err(err).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return s.userRepository.FindUserByID(ctx, userID)
}

func (s *userService) GetUserByUserName(ctx context.Context, userName string) (models.User, error) {
	return s.userRepository.FindUserByUserName(ctx, userName)
}

func hasRegistrationField(req models.RegisterUserRequest, field string) bool {
	switch field {
	case "user_name":
		return req.UserName != nil
	case "password":
		return req.Password != nil
	case "full_name":
		return req.FullName != nil
	default:
		return false
	}
}
