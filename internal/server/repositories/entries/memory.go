package entries

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/server/models"
)

type MemoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	entries map[int64]*models.Entry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[int64]*models.Entry)}
}

func (r *MemoryRepository) Upsert(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()

	for _, e := range r.entries {
		if e.UserID == entry.UserID && e.Website == entry.Website && e.Username == entry.Username {
			e.EncryptedPassword = entry.EncryptedPassword
			e.Salt = entry.Salt
			e.IV = entry.IV
			e.UpdatedAt = now

			found := *e
			*entry = found
			return entry, nil
		}
	}

	r.nextID++
	entry.ID = r.nextID
	entry.CreatedAt = now
	entry.UpdatedAt = now

	stored := *entry
	r.entries[entry.ID] = &stored

	return entry, nil
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID string) ([]*models.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.Entry
	for _, e := range r.entries {
		if e.UserID == userID {
			found := *e
			result = append(result, &found)
		}
	}

	// most recently updated first, ties by insertion order
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].UpdatedAt.Equal(result[j].UpdatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})

	return result, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, userID string, entryID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[entryID]
	if !ok || e.UserID != userID {
		return common.ErrorNotFound
	}

	delete(r.entries, entryID)
	return nil
}
