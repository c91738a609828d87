package user

import (
	"context"
	"sync"

	"github.com/ppdew9811-hash/eduvoice/domain"
	"github.com/ppdew9811-hash/eduvoice/entities"
)

// memoryUserRepository keeps users in a process-local map. Used in demo
// mode (no database configured) and by tests.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]entities.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		users: make(map[string]entities.User),
	}
}

func (r *memoryUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID.String()] = *user
	return nil
}

func (r *memoryUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memoryUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID.String()]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID.String()] = *user
	return nil
}
