// Package settings persists the settings record to a local SQLite file,
// a single JSON blob under one key, overwritten wholesale on every save.
package settings

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/oxiliosofficial/drafthause-admin/internal/models"
	_ "modernc.org/sqlite"
)

const settingsKey = "dh-settings"

type Bridge struct {
	db *sql.DB
}

func Open(path string) (*Bridge, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("failed to open settings storage: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize settings storage: %w", err)
	}
	return &Bridge{db: db}, nil
}

func (b *Bridge) Close() error {
	return b.db.Close()
}

// Load returns the persisted settings record. A missing row or a blob that
// no longer parses both fall back to the defaults; load never fails.
func (b *Bridge) Load() models.Settings {
	var blob string
	err := b.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, settingsKey).Scan(&blob)
	if err != nil {
		return models.DefaultSettings()
	}

	var s models.Settings
	if err := json.Unmarshal([]byte(blob), &s); err != nil {
		return models.DefaultSettings()
	}
	return s
}

// Save overwrites the stored record with the full serialized settings.
func (b *Bridge) Save(s models.Settings) error {
	blob, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	_, err = b.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, settingsKey, string(blob))
	if err != nil {
		return fmt.Errorf("failed to persist settings: %w", err)
	}
	return nil
}
