package entries

import (
	"context"

	"github.com/dmitrijs2005/passvault/internal/server/models"
)

type Repository interface {
	// Upsert matches an existing row by (UserID, Website, Username) and
	// overwrites its ciphertext fields, bumping UpdatedAt; otherwise it
	// inserts a new row. The matched-or-created entry is returned.
	Upsert(ctx context.Context, entry *models.Entry) (*models.Entry, error)

	// ListByUser returns the user's entries, most recently updated first,
	// ties broken by insertion order.
	ListByUser(ctx context.Context, userID string) ([]*models.Entry, error)

	// Delete removes the entry only when it belongs to the user. A missing
	// row and a row owned by someone else both yield common.ErrorNotFound.
	Delete(ctx context.Context, userID string, entryID int64) error
}
