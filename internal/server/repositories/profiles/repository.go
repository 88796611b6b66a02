// Package profiles persists the one-per-user encryption-salt profile.
package profiles

import (
	"context"

	"github.com/dmitrijs2005/passvault/internal/server/models"
)

type Repository interface {
	// CreateIfAbsent stores the profile unless one already exists for the
	// user. It never overwrites an existing salt; implementations must make
	// the existence check and the write a single atomic step.
	CreateIfAbsent(ctx context.Context, profile *models.Profile) error
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	UpdateLoginAddr(ctx context.Context, userID string, addr string) error
}
