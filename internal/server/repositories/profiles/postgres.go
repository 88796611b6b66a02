package profiles

import (
	"context"
	"database/sql"
	"errors"
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

// CreateIfAbsent relies on the user_id primary key: a concurrent first access
// by two requests resolves to a single authoritative row, the loser's salt is
// discarded by DO NOTHING.
func (r *PostgresRepository) CreateIfAbsent(ctx context.Context, profile *models.Profile) error {

	query :=
		`INSERT INTO user_profiles (user_id, salt, last_login_addr)
         VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO NOTHING
		 `

	_, err := r.db.ExecContext(ctx, query, profile.UserID, profile.Salt, profile.LastLoginAddr)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	query :=
		`SELECT user_id, salt, created_at, last_login_addr FROM user_profiles
		 WHERE user_id = $1
		 `

	profile := &models.Profile{}
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&profile.UserID, &profile.Salt, &profile.CreatedAt, &profile.LastLoginAddr)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return profile, nil
}

func (r *PostgresRepository) UpdateLoginAddr(ctx context.Context, userID string, addr string) error {
	query :=
		`UPDATE user_profiles SET last_login_addr = $2
		 WHERE user_id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, userID, addr)
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
