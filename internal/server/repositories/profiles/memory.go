package profiles

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/server/models"
)

type MemoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]*models.Profile // keyed by user ID
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{profiles: make(map[string]*models.Profile)}
}

func (r *MemoryRepository) CreateIfAbsent(ctx context.Context, profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[profile.UserID]; ok {
		return nil
	}

	stored := *profile
	stored.CreatedAt = time.Now()
	r.profiles[profile.UserID] = &stored

	return nil
}

func (r *MemoryRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}

	found := *p
	return &found, nil
}

func (r *MemoryRepository) UpdateLoginAddr(ctx context.Context, userID string, addr string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[userID]
	if !ok {
		return common.ErrorNotFound
	}
	p.LastLoginAddr = addr

	return nil
}
