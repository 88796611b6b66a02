package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/server/config"
	"github.com/dmitrijs2005/passvault/internal/server/repositories/repomanager"
)

func newUserService(t *testing.T) (*UserService, repomanager.RepositoryManager) {
	t.Helper()
	rm := repomanager.NewMemoryRepositoryManager()
	cfg := &config.Config{BcryptCost: bcrypt.MinCost} // cheap hashing for tests
	return NewUserService(nil, rm, cfg), rm
}

func TestRegister_Success(t *testing.T) {
	s, rm := newUserService(t)
	ctx := context.Background()

	u, err := s.Register(ctx, "alice", "a@x.com", "password1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if u.ID == "" {
		t.Fatal("expected assigned user ID")
	}
	if string(u.PasswordHash) == "password1" {
		t.Fatal("raw password must never be stored")
	}

	// registration provisions the encryption salt atomically
	profile, err := rm.Profiles(nil).GetByUserID(ctx, u.ID)
	if err != nil {
		t.Fatalf("expected profile after registration: %v", err)
	}
	if len(profile.Salt) != common.UserSaltBytes*2 {
		t.Fatalf("unexpected salt length: %d", len(profile.Salt))
	}
}

func TestRegister_SecondTimeFails(t *testing.T) {
	s, _ := newUserService(t)
	ctx := context.Background()

	if _, err := s.Register(ctx, "alice", "a@x.com", "password1"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, err := s.Register(ctx, "alice", "other@x.com", "password1")
	if !errors.Is(err, common.ErrorUsernameTaken) {
		t.Fatalf("want common.ErrorUsernameTaken, got %v", err)
	}

	_, err = s.Register(ctx, "bob", "a@x.com", "password1")
	if !errors.Is(err, common.ErrorEmailTaken) {
		t.Fatalf("want common.ErrorEmailTaken, got %v", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	s, _ := newUserService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		email    string
		password string
		want     error
	}{
		{"missing username", "", "a@x.com", "password1", common.ErrorMissingField},
		{"missing email", "alice", "", "password1", common.ErrorMissingField},
		{"missing password", "alice", "a@x.com", "", common.ErrorMissingField},
		{"whitespace username", "   ", "a@x.com", "password1", common.ErrorMissingField},
		{"short password", "alice", "a@x.com", "seven77", common.ErrorWeakPassword},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Register(ctx, tc.username, tc.email, tc.password)
			if !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}
}

func TestRegister_SamePasswordDifferentHashes(t *testing.T) {
	s, _ := newUserService(t)
	ctx := context.Background()

	a, err := s.Register(ctx, "alice", "a@x.com", "password1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	b, err := s.Register(ctx, "bob", "b@x.com", "password1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if string(a.PasswordHash) == string(b.PasswordHash) {
		t.Fatal("bcrypt must salt per call: identical hashes for identical passwords")
	}
}

func TestVerify_Success(t *testing.T) {
	s, _ := newUserService(t)
	ctx := context.Background()

	u, err := s.Register(ctx, "alice", "a@x.com", "password1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	userID, err := s.Verify(ctx, "alice", "password1")
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if userID != u.ID {
		t.Fatalf("want user ID %q, got %q", u.ID, userID)
	}
}

func TestVerify_GenericFailure(t *testing.T) {
	s, _ := newUserService(t)
	ctx := context.Background()

	if _, err := s.Register(ctx, "alice", "a@x.com", "password1"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	// wrong password and unknown user must be indistinguishable
	_, errWrong := s.Verify(ctx, "alice", "wrongpass")
	_, errGhost := s.Verify(ctx, "ghost", "password1")

	if !errors.Is(errWrong, common.ErrorUnauthorized) {
		t.Fatalf("want common.ErrorUnauthorized, got %v", errWrong)
	}
	if !errors.Is(errGhost, common.ErrorUnauthorized) {
		t.Fatalf("want common.ErrorUnauthorized, got %v", errGhost)
	}
	if errWrong.Error() != errGhost.Error() {
		t.Fatalf("failure messages differ: %q vs %q", errWrong, errGhost)
	}
}
