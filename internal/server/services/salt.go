package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/logging"
	"github.com/dmitrijs2005/passvault/internal/server/models"
	"github.com/dmitrijs2005/passvault/internal/server/repositories/repomanager"
)

// SaltService provisions the per-user encryption salt the client uses to
// derive its local key. Registration already creates the profile row; the
// lazy create here is a safety net for accounts that predate that flow.
type SaltService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewSaltService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *SaltService {
	return &SaltService{
		db:          db,
		repomanager: m,
		logger:      logger.With("module", "salt_service"),
	}
}

// GetOrCreateSalt returns the user's salt, creating one if it is missing.
// Idempotent under concurrency: the insert is ON CONFLICT DO NOTHING and the
// returned value always comes from an authoritative read after it, so an
// existing salt can never be overwritten. Overwriting would break the
// decryptability of everything the client already stored.
func (s *SaltService) GetOrCreateSalt(ctx context.Context, userID string) (string, error) {

	repo := s.repomanager.Profiles(s.db)

	profile, err := repo.GetByUserID(ctx, userID)
	if err == nil {
		return profile.Salt, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return "", common.ErrorInternal
	}

	s.logger.Warn(ctx, "profile missing for registered user, creating lazily", "user_id", userID)

	salt, err := common.MakeRandHexString(common.UserSaltBytes)
	if err != nil {
		return "", common.ErrorInternal
	}

	if err := repo.CreateIfAbsent(ctx, &models.Profile{UserID: userID, Salt: salt}); err != nil {
		return "", common.ErrorInternal
	}

	profile, err = repo.GetByUserID(ctx, userID)
	if err != nil {
		return "", common.ErrorInternal
	}

	return profile.Salt, nil
}

// RecordLoginAddress stores the client network address seen at login.
// Best-effort: failures are logged and never surfaced, a login must not fail
// over bookkeeping.
func (s *SaltService) RecordLoginAddress(ctx context.Context, userID string, addr string) {

	repo := s.repomanager.Profiles(s.db)

	if err := repo.UpdateLoginAddr(ctx, userID, addr); err != nil {
		s.logger.Warn(ctx, "could not record login address", "user_id", userID, "error", err.Error())
	}
}
