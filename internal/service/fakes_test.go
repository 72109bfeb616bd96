package service

import (
	"context"
	"sync"
	"time"

	"github.com/thingfulapp/thingful-server/internal/store"
	"github.com/thingfulapp/thingful-server/models"
)

// fakeUserRepository is an in-memory store.UserRepository that enforces the
// same uniqueness semantics as the real constrained insert: the check and
// the insert happen under one lock, so a racing duplicate loses with
// store.ErrUserNameAlreadyExists.
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

func stringPtr(s string) *string {
	return &s
}
