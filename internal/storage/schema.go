package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			id TEXT PRIMARY KEY,
			display_name TEXT NOT NULL,
			avatar_glyph TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL,
			active INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS entries (
			profile_id TEXT NOT NULL,
			day_key TEXT NOT NULL,
			clock TEXT NOT NULL DEFAULT '',
			mood INTEGER NOT NULL,
			energy INTEGER NOT NULL,
			sleep INTEGER NOT NULL,
			stress INTEGER NOT NULL,
			productivity INTEGER NOT NULL,
			social INTEGER NOT NULL,
			notes TEXT NOT NULL DEFAULT '',

			PRIMARY KEY (profile_id, day_key),
			FOREIGN KEY (profile_id) REFERENCES profiles(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_entries_profile_day ON entries(profile_id, day_key);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
