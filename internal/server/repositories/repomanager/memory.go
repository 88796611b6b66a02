package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/passvault/internal/dbx"
	"github.com/dmitrijs2005/passvault/internal/server/repositories/entries"
	"github.com/dmitrijs2005/passvault/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/passvault/internal/server/repositories/users"
)

// MemoryRepositoryManager serves the same repository instances regardless of
// the (ignored) DB handle. It backs tests and DSN-less development runs.
type MemoryRepositoryManager struct {
	users    *users.MemoryRepository
	profiles *profiles.MemoryRepository
	entries  *entries.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:    users.NewMemoryRepository(),
		profiles: profiles.NewMemoryRepository(),
		entries:  entries.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) Profiles(db dbx.DBTX) profiles.Repository {
	return m.profiles
}

func (m *MemoryRepositoryManager) Entries(db dbx.DBTX) entries.Repository {
	return m.entries
}

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}
