package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"wordmatch/internal/database"
	"wordmatch/internal/domain"
)

// SettingsRepo implements repository.SettingsRepository
type SettingsRepo struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewSettingsRepo creates a new settings repository
func NewSettingsRepo(db *sql.DB, dialect database.Dialect) *SettingsRepo {
	return &SettingsRepo{db: db, dialect: dialect}
}

// GetSetting returns the stored value for key. found is false when the key was never set.
func (r *SettingsRepo) GetSetting(ctx context.Context, key string) (string, bool, error) {
	query := r.dialect.RewriteQuery(`SELECT value FROM settings WHERE key_name = ?`)

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, domain.NewPersistenceError("get setting "+key, err)
	}
	return value, true, nil
}

// SetSetting stores value under key
func (r *SettingsRepo) SetSetting(ctx context.Context, key, value string) error {
	query := r.dialect.RewriteQuery(r.dialect.UpsertSettingQuery())
	_, err := r.db.ExecContext(ctx, query, key, value)
	return domain.NewPersistenceError("set setting "+key, err)
}
