package users

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/artmarket/internal/common"
	"github.com/dmitrijs2005/artmarket/internal/models"
)

// MemoryRepository keeps users in process memory. Used when no database
// is configured.
type MemoryRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(ctx context.Context, u models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.ContainsFunc(r.users, func(x models.User) bool { return x.Email == u.Email }) {
		return ErrDuplicateEmail
	}
	r.users = append(r.users, u)
	return nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, common.ErrorNotFound
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}
