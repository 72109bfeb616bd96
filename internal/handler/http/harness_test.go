package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/thingfulapp/thingful-server/internal/config"
	"github.com/thingfulapp/thingful-server/internal/logger"
	"github.com/thingfulapp/thingful-server/internal/service"
	"github.com/thingfulapp/thingful-server/internal/store"
	"github.com/thingfulapp/thingful-server/models"
	"golang.org/x/crypto/bcrypt"
)

// ---- in-memory repositories ----

// fakeUserRepository enforces username uniqueness under one lock, so a
// racing duplicate insert loses with store.ErrUserNameAlreadyExists just
// like against the real constrained insert.
type fakeUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]models.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]models.User)}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.users[user.UserName]; exists {
		return models.User{}, store.ErrUserNameAlreadyExists
	}

	f.nextID++
	user.ID = f.nextID
	user.DateCreated = time.Now().UTC()
	f.users[user.UserName] = user

	return user, nil
}

func (f *fakeUserRepository) FindUserByUserName(_ context.Context, userName string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[userName]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}

	return user, nil
}

func (f *fakeUserRepository) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.ID == userID {
			return user, nil
		}
	}

	return models.User{}, store.ErrUserNotFound
}

type fakeThingRepository struct {
	things  []models.Thing
	reviews map[int64][]models.Review
}

func newFakeThingRepository() *fakeThingRepository {
	return &fakeThingRepository{reviews: make(map[int64][]models.Review)}
}

func (f *fakeThingRepository) ListThings(_ context.Context) ([]models.Thing, error) {
	things := make([]models.Thing, 0, len(f.things))
	things = append(things, f.things...)
	return things, nil
}

func (f *fakeThingRepository) FindThingByID(_ context.Context, thingID int64) (models.Thing, error) {
	for _, thing := range f.things {
		if thing.ID == thingID {
			return thing, nil
		}
	}

	return models.Thing{}, store.ErrThingNotFound
}

func (f *fakeThingRepository) ListThingReviews(_ context.Context, thingID int64) ([]models.Review, error) {
	reviews := make([]models.Review, 0, len(f.reviews[thingID]))
	reviews = append(reviews, f.reviews[thingID]...)
	return reviews, nil
}

// ---- test fixture ----

type testFixture struct {
	handler   *Handler
	router    http.Handler
	userRepo  *fakeUserRepository
	thingRepo *fakeThingRepository
	services  *service.Services
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()

	userRepo := newFakeUserRepository()
	thingRepo := newFakeThingRepository()

	services := service.NewServices(&store.Storages{
		UserRepository:  userRepo,
		ThingRepository: thingRepo,
	}, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "thingful-server",
		TokenDuration: time.Hour,
		BcryptCost:    bcrypt.MinCost,
	}, logger.Nop())

	handler := NewHandler(services, logger.Nop())

	return &testFixture{
		handler:   handler,
		router:    handler.Init(),
		userRepo:  userRepo,
		thingRepo: thingRepo,
		services:  services,
	}
}

// seedUser stores an account with a bcrypt-hashed password and returns it.
func (f *testFixture) seedUser(t *testing.T, userName, password string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user, err := f.userRepo.CreateUser(context.Background(), models.User{
		UserName: userName,
		FullName: "Seeded User",
		Password: string(hash),
	})
	require.NoError(t, err)

	return user
}

// bearerFor issues a valid signed token for the given account.
func (f *testFixture) bearerFor(t *testing.T, user models.User) string {
	t.Helper()

	token, err := f.services.AuthService.CreateToken(context.Background(), user)
	require.NoError(t, err)

	return "Bearer " + token.SignedString
}

// do executes a request against the full router and returns the recorder.
func (f *testFixture) do(t *testing.T, method, target, body, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	return rr
}

// errorBody decodes the uniform {"error": ...} envelope.
func errorBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var resp models.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))

	return resp.Error
}

func jsonBody(t *testing.T, v any) string {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)

	return string(b)
}
