// Package inmemory holds users and tokens in process memory. It mirrors the
// postgres repository's behavior closely enough to back service and handler
// tests without a database.
package inmemory

import (
	"context"
	"sync"

	"github.com/ikaro-souza/recipe-app-api/internal/recipes/domain/models"
	"github.com/ikaro-souza/recipe-app-api/internal/recipes/repository/userrepo"
)

type UsersInmemoryRepo struct {
	mu     sync.Mutex
	users  map[string]models.User
	tokens map[int]string
	nextID int
}

func New() *UsersInmemoryRepo {
	return &UsersInmemoryRepo{ //nolint:exhaustruct
		users:  make(map[string]models.User),
		tokens: make(map[int]string),
		nextID: 1,
	}
}

func (ur *UsersInmemoryRepo) CreateUser(_ context.Context, u models.User) (models.User, error) {
	ur.mu.Lock()
	defer ur.mu.Unlock()

	if _, ok := ur.users[u.Email]; ok {
		return models.User{}, userrepo.ErrEmailTaken
	}

	u.ID = ur.nextID
	ur.nextID++
	ur.users[u.Email] = u

	return u, nil
}

func (ur *UsersInmemoryRepo) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	ur.mu.Lock()
	defer ur.mu.Unlock()

	u, ok := ur.users[email]
	if !ok {
		return models.User{}, userrepo.ErrNotFound
	}

	return u, nil
}

func (ur *UsersInmemoryRepo) UpdateUser(_ context.Context, u models.User) (models.User, error) {
	ur.mu.Lock()
	defer ur.mu.Unlock()

	for email, stored := range ur.users {
		if stored.ID == u.ID {
			delete(ur.users, email)
			ur.users[u.Email] = u

			return u, nil
		}
	}

	return models.User{}, userrepo.ErrNotFound
}

// ReplaceToken keys tokens by user, so storing a new key drops the old one,
// like the postgres upsert does.
func (ur *UsersInmemoryRepo) ReplaceToken(_ context.Context, token models.Token) error {
	ur.mu.Lock()
	defer ur.mu.Unlock()

	ur.tokens[token.UserID] = token.Key

	return nil
}

func (ur *UsersInmemoryRepo) GetUserByToken(_ context.Context, key string) (models.User, error) {
	ur.mu.Lock()
	defer ur.mu.Unlock()

	for userID, stored := range ur.tokens {
		if stored != key {
			continue
		}

		for _, u := range ur.users {
			if u.ID == userID {
				return u, nil
			}
		}
	}

	return models.User{}, userrepo.ErrTokenNotFound
}

func (ur *UsersInmemoryRepo) Shutdown(_ context.Context) error {
	return nil
}
