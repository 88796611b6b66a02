package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/server/models"
)

// MemoryRepository is a mutex-guarded map-backed Repository. It backs tests
// and DSN-less development runs and enforces the same uniqueness rules as
// the Postgres schema.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User // keyed by ID
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]*models.User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.UserName == user.UserName {
			return nil, common.ErrorUsernameTaken
		}
		if u.Email == user.Email {
			return nil, common.ErrorEmailTaken
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()

	stored := *user
	r.users[user.ID] = &stored

	return user, nil
}

func (r *MemoryRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.UserName == userName {
			found := *u
			return &found, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, common.ErrorNotFound
}
