package auth

import (
	"context"
	"sync"
	"time"
)

type memoryRepository struct {
	mu       sync.RWMutex
	users    map[string]User    // keyed by normalized email
	sessions map[string]Session // keyed by token
}

// NewMemoryRepository builds an in-memory user/session store for testing
// and for running without a database in development.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		users:    make(map[string]User),
		sessions: make(map[string]Session),
	}
}

func (r *memoryRepository) CreateUser(_ context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Email]; exists {
		return ErrEmailTaken
	}
	r.users[user.Email] = user
	return nil
}

func (r *memoryRepository) FindUserByEmail(_ context.Context, email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (r *memoryRepository) UpdatePasswordHash(_ context.Context, userID string, hash []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for email, user := range r.users {
		if user.ID == userID {
			user.PasswordHash = hash
			user.UpdatedAt = time.Now().UTC()
			r.users[email] = user
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryRepository) CreateSession(_ context.Context, session Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.Token] = session
	return nil
}

func (r *memoryRepository) FindActiveSessionUser(_ context.Context, token string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[token]
	if !ok || !session.ExpiresAt.After(time.Now()) {
		return User{}, ErrNotFound
	}
	for _, user := range r.users {
		if user.ID == session.UserID {
			return user, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *memoryRepository) ExpireSession(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[token]
	if !ok || !session.ExpiresAt.After(time.Now()) {
		return nil
	}
	session.ExpiresAt = time.Now()
	r.sessions[token] = session
	return nil
}
