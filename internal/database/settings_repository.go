package database

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/aitbekov/tirlik/internal/models"
)

// SettingsRepo handles the settings key/value table.
// Values are stored as JSON text so arbitrary backup values round-trip.
type SettingsRepo struct {
	db *sql.DB
}

// Get retrieves a setting by key. Returns sql.ErrNoRows when unset.
func (r *SettingsRepo) Get(ctx context.Context, key string) (*models.Setting, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		"SELECT value FROM settings WHERE key = ?", key,
	).Scan(&raw)
	if err != nil {
		return nil, err
	}
	return decodeSetting(key, raw)
}

// Put upserts a setting
func (r *SettingsRepo) Put(ctx context.Context, setting *models.Setting) error {
	raw, err := json.Marshal(setting.Value)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		setting.Key, string(raw),
	)
	return err
}

// GetAll retrieves every setting
func (r *SettingsRepo) GetAll(ctx context.Context) ([]*models.Setting, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT key, value FROM settings")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []*models.Setting
	for rows.Next() {
		var key, raw string
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, err
		}
		setting, err := decodeSetting(key, raw)
		if err != nil {
			return nil, err
		}
		settings = append(settings, setting)
	}
	return settings, rows.Err()
}

func decodeSetting(key, raw string) (*models.Setting, error) {
	setting := &models.Setting{Key: key}
	if err := json.Unmarshal([]byte(raw), &setting.Value); err != nil {
		return nil, err
	}
	return setting, nil
}
