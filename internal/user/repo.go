// Package user holds the seeded staff accounts, password checks and the
// role tokens handed out at login.
package user

import (
	"context"
	"fmt"
	"sync"

	"github.com/MikeMC777/pos-service/internal/apperr"
)

var (
	ErrNotFound = fmt.Errorf("user %w", apperr.ErrNotFound)
)

type Repository interface {
	GetByID(ctx context.Context, id int) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

type MemRepo struct {
	mu    sync.RWMutex
	users []User
}

// NewMemRepo hashes every seed password with the given bcrypt cost
// (0 picks the default cost).
func NewMemRepo(seed []Credential, cost int) (*MemRepo, error) {
	r := &MemRepo{users: make([]User, 0, len(seed))}
	for _, c := range seed {
		if !c.Role.Valid() {
			return nil, fmt.Errorf("seed user %q: unknown role %q", c.Username, c.Role)
		}
		hash, err := HashPassword(c.Password, cost)
		if err != nil {
			return nil, fmt.Errorf("seed user %q: %w", c.Username, err)
		}
		r.users = append(r.users, User{ID: c.ID, Username: c.Username, Role: c.Role, PasswordHash: hash})
	}
	return r, nil
}

func (r *MemRepo) GetByID(ctx context.Context, id int) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			cp := u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}
