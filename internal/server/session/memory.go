package session

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/passvault/internal/common"
)

type memoryRecord struct {
	userID    string
	expiresAt time.Time
}

// MemoryStore is the default single-process Store: a mutex-guarded map with
// lazy expiry at read time. Run starts an optional sweeper that prunes
// expired records so abandoned sessions do not accumulate.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryRecord

	// overridable for expiry tests
	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryRecord),
		now:      time.Now,
	}
}

func (s *MemoryStore) Save(ctx context.Context, token string, userID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = memoryRecord{userID: userID, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[token]
	if !ok {
		return "", common.ErrorNoSession
	}
	if !s.now().Before(rec.expiresAt) {
		delete(s.sessions, token)
		return "", common.ErrorSessionExpired
	}

	return rec.userID, nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}

// Run sweeps expired sessions every interval until ctx is cancelled.
func (s *MemoryStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *MemoryStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for token, rec := range s.sessions {
		if !now.Before(rec.expiresAt) {
			delete(s.sessions, token)
		}
	}
}
