// Package services contains server-side business logic. This file implements
// UserService: registration with bcrypt hashing and credential verification.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/dbx"
	"github.com/dmitrijs2005/passvault/internal/server/config"
	"github.com/dmitrijs2005/passvault/internal/server/models"
	"github.com/dmitrijs2005/passvault/internal/server/repositories/repomanager"
)

// MinPasswordLength is the only strength requirement the server enforces;
// anything beyond that is the client's concern.
const MinPasswordLength = 8

// dummyHash is a syntactically valid bcrypt hash compared against when the
// username is unknown, so the failure path costs the same as a real mismatch
// and login errors never reveal which field was wrong.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// UserService provides the credential store operations:
// - Register: create a user and, atomically, their encryption-salt profile
// - Verify: check a username/password pair against the stored bcrypt hash
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	bcryptCost  int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		bcryptCost:  cfg.BcryptCost,
	}
}

// withTx runs fn transactionally when a real DB handle is present. The
// in-memory repository manager ignores the handle entirely.
func (s *UserService) withTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	if s.db == nil {
		return fn(ctx, nil)
	}
	return dbx.WithTx(ctx, s.db, nil, fn)
}

// Register creates a new user. Only a one-way bcrypt hash of the password is
// stored; bcrypt salts each hash internally, so two users with the same
// password get different stored values. The user row and the profile row
// (carrying the client-side encryption salt) are written in one transaction,
// so a registered user always has a salt.
func (s *UserService) Register(ctx context.Context, username, email, rawPassword string) (*models.User, error) {

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || rawPassword == "" {
		return nil, common.ErrorMissingField
	}
	if len(rawPassword) < MinPasswordLength {
		return nil, common.ErrorWeakPassword
	}

	// friendlier duplicate messages up front; the unique constraints in
	// Create remain the authority under races
	repo := s.repomanager.Users(s.db)
	if _, err := repo.GetUserByLogin(ctx, username); err == nil {
		return nil, common.ErrorUsernameTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}
	if _, err := repo.GetUserByEmail(ctx, email); err == nil {
		return nil, common.ErrorEmailTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	passwordBytes := []byte(rawPassword)
	hash, err := bcrypt.GenerateFromPassword(passwordBytes, s.bcryptCost)
	common.WipeByteArray(passwordBytes)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	salt, err := common.MakeRandHexString(common.UserSaltBytes)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{UserName: username, Email: email, PasswordHash: hash}

	if err := s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		u, err := s.repomanager.Users(tx).Create(ctx, user)
		if err != nil {
			return err
		}
		profile := &models.Profile{UserID: u.ID, Salt: salt}
		return s.repomanager.Profiles(tx).CreateIfAbsent(ctx, profile)
	}); err != nil {
		if errors.Is(err, common.ErrorUsernameTaken) || errors.Is(err, common.ErrorEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Verify checks the credentials and returns the user ID on success. Unknown
// usernames and wrong passwords are indistinguishable to the caller: both
// return common.ErrorUnauthorized.
func (s *UserService) Verify(ctx context.Context, username, rawPassword string) (string, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByLogin(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// burn a comparison anyway so the miss costs the same
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(rawPassword))
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	passwordBytes := []byte(rawPassword)
	err = bcrypt.CompareHashAndPassword(user.PasswordHash, passwordBytes)
	common.WipeByteArray(passwordBytes)
	if err != nil {
		return "", common.ErrorUnauthorized
	}

	return user.ID, nil
}
