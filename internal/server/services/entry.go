package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/server/models"
	"github.com/dmitrijs2005/passvault/internal/server/repositories/repomanager"
)

// EntryService stores and serves vault entries. Payloads are opaque: the
// ciphertext, per-entry salt and IV travel through unchanged in both
// directions.
type EntryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewEntryService(db *sql.DB, m repomanager.RepositoryManager) *EntryService {
	return &EntryService{
		db:          db,
		repomanager: m,
	}
}

// Upsert saves an entry for the user. A second save with the same
// (website, username) overwrites the ciphertext fields of the existing entry
// instead of creating a duplicate. All five payload fields must be non-empty
// after trimming.
func (s *EntryService) Upsert(ctx context.Context, userID, website, username, encryptedPassword, salt, iv string) (*models.Entry, error) {

	website = strings.TrimSpace(website)
	username = strings.TrimSpace(username)
	encryptedPassword = strings.TrimSpace(encryptedPassword)
	salt = strings.TrimSpace(salt)
	iv = strings.TrimSpace(iv)

	if website == "" || username == "" || encryptedPassword == "" || salt == "" || iv == "" {
		return nil, common.ErrorMissingField
	}

	entry := &models.Entry{
		UserID:            userID,
		Website:           website,
		Username:          username,
		EncryptedPassword: encryptedPassword,
		Salt:              salt,
		IV:                iv,
	}

	repo := s.repomanager.Entries(s.db)

	entry, err := repo.Upsert(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("error saving entry: %w", err)
	}

	return entry, nil
}

// List returns the user's entries, most recently updated first. Entries of
// other users never appear: every read filters by owner.
func (s *EntryService) List(ctx context.Context, userID string) ([]*models.Entry, error) {

	repo := s.repomanager.Entries(s.db)

	result, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing entries: %w", err)
	}

	return result, nil
}

// Delete removes the user's entry. A missing entry and an entry owned by
// another user both come back as common.ErrorNotFound, so existence never
// leaks across tenants.
func (s *EntryService) Delete(ctx context.Context, userID string, entryID int64) error {

	repo := s.repomanager.Entries(s.db)

	if err := repo.Delete(ctx, userID, entryID); err != nil {
		return err
	}

	return nil
}
