package service

import (
	"fmt"
	"sync"

	"github.com/JonaJoost/wg-abrechner/internal/models"
)

// UserRegistry keeps the login identities. Usernames are unique within a
// registry.
type UserRegistry struct {
	mu    sync.Mutex
	users []*models.User
}

// NewUserRegistry returns an empty registry.
func NewUserRegistry() *UserRegistry {
	return &UserRegistry{}
}

// Add registers a user. Nil users and duplicate usernames are rejected.
func (r *UserRegistry) Add(u *models.User) error {
	if u == nil {
		return fmt.Errorf("%w: user must not be nil", models.ErrInvalidArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username() == u.Username() {
			return fmt.Errorf("%w: username %q already exists", models.ErrInvalidArgument, u.Username())
		}
	}
	r.users = append(r.users, u)
	return nil
}

// AddIfAbsent registers the user unless the username is already taken.
// It reports whether the user was added.
func (r *UserRegistry) AddIfAbsent(u *models.User) bool {
	if u == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username() == u.Username() {
			return false
		}
	}
	r.users = append(r.users, u)
	return true
}

// ByUsername returns the user with exactly the given username.
func (r *UserRegistry) ByUsername(username string) (*models.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username() == username {
			return u, true
		}
	}
	return nil, false
}

// All returns the users in registration order. The slice is a copy.
func (r *UserRegistry) All() []*models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.User, len(r.users))
	copy(out, r.users)
	return out
}
