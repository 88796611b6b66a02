package entries

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/dbx"
	"github.com/dmitrijs2005/passvault/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert is a single statement so an interrupted request can never leave a
// half-written entry behind.
func (r *PostgresRepository) Upsert(ctx context.Context, entry *models.Entry) (*models.Entry, error) {

	query :=
		`INSERT INTO vault_entries (user_id, website, username, encrypted_password, salt, iv)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id, website, username) DO UPDATE
		 SET encrypted_password = EXCLUDED.encrypted_password,
		     salt = EXCLUDED.salt,
		     iv = EXCLUDED.iv,
		     updated_at = now()
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		entry.UserID, entry.Website, entry.Username,
		entry.EncryptedPassword, entry.Salt, entry.IV).
		Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return entry, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Entry, error) {
	query :=
		`SELECT id, user_id, website, username, encrypted_password, salt, iv, created_at, updated_at
		 FROM vault_entries
		 WHERE user_id = $1
		 ORDER BY updated_at DESC, id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Entry
	for rows.Next() {
		entry := &models.Entry{}
		err := rows.Scan(&entry.ID, &entry.UserID, &entry.Website, &entry.Username,
			&entry.EncryptedPassword, &entry.Salt, &entry.IV, &entry.CreatedAt, &entry.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID string, entryID int64) error {
	query :=
		`DELETE FROM vault_entries
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, entryID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
