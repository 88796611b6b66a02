package session

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/logging"
)

// tokenBytes of entropy per session token; the hex token string is twice as long.
const tokenBytes = 32

// CredentialVerifier is the slice of the user service the manager needs.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, rawPassword string) (string, error)
}

// SaltProvisioner is the slice of the salt service invoked on login.
type SaltProvisioner interface {
	GetOrCreateSalt(ctx context.Context, userID string) (string, error)
	RecordLoginAddress(ctx context.Context, userID string, addr string)
}

// Manager drives the session state machine:
// Anonymous -> Authenticated -> (Expired | LoggedOut) -> Anonymous.
// Expiry is absolute (no renewal on activity) and evaluated lazily at
// Validate time.
type Manager struct {
	store  Store
	users  CredentialVerifier
	salts  SaltProvisioner
	ttl    time.Duration
	logger logging.Logger
}

func NewManager(store Store, users CredentialVerifier, salts SaltProvisioner, ttl time.Duration, logger logging.Logger) *Manager {
	return &Manager{
		store:  store,
		users:  users,
		salts:  salts,
		ttl:    ttl,
		logger: logger.With("module", "session_manager"),
	}
}

// Login verifies the credentials and, on success, issues an opaque token
// bound to now + TTL. It also makes sure the user's encryption salt exists
// and records the client address; neither of those can fail the login.
func (m *Manager) Login(ctx context.Context, username, rawPassword, clientAddr string) (string, error) {

	userID, err := m.users.Verify(ctx, username, rawPassword)
	if err != nil {
		return "", err
	}

	token, err := common.MakeRandHexString(tokenBytes)
	if err != nil {
		return "", common.ErrorInternal
	}

	if err := m.store.Save(ctx, token, userID, m.ttl); err != nil {
		m.logger.Error(ctx, "could not save session", "error", err.Error())
		return "", common.ErrorInternal
	}

	if _, err := m.salts.GetOrCreateSalt(ctx, userID); err != nil {
		m.logger.Warn(ctx, "salt provisioning failed at login", "user_id", userID, "error", err.Error())
	}
	m.salts.RecordLoginAddress(ctx, userID, clientAddr)

	return token, nil
}

// Validate resolves the token to a user ID. Expired and absent sessions both
// mean "must re-authenticate"; they stay distinguishable in the logs only.
func (m *Manager) Validate(ctx context.Context, token string) (string, error) {

	if token == "" {
		return "", common.ErrorNoSession
	}

	userID, err := m.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorSessionExpired) {
			m.logger.Info(ctx, "session expired")
			return "", err
		}
		if errors.Is(err, common.ErrorNoSession) {
			return "", err
		}
		m.logger.Error(ctx, "session store failure", "error", err.Error())
		return "", common.ErrorInternal
	}

	return userID, nil
}

// Logout destroys the session immediately. Idempotent: logging out a token
// that is already gone is not an error.
func (m *Manager) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, token)
}

// Check is a read-only liveness probe with no side effects, used by clients
// to pre-empt expiry-driven failures.
func (m *Manager) Check(ctx context.Context, token string) bool {
	_, err := m.Validate(ctx, token)
	return err == nil
}
