package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS user_profile (
		id                   TEXT PRIMARY KEY,
		timezone             TEXT NOT NULL DEFAULT 'UTC',
		work_start_hour      INTEGER NOT NULL DEFAULT 9,
		work_end_hour        INTEGER NOT NULL DEFAULT 18,
		home_location        TEXT NOT NULL DEFAULT '',
		default_event_min    INTEGER NOT NULL DEFAULT 60,
		max_suggestions      INTEGER NOT NULL DEFAULT 3,
		travel_check_enabled INTEGER NOT NULL DEFAULT 1
	)`,

	`INSERT OR IGNORE INTO user_profile (
		id, timezone, work_start_hour, work_end_hour, home_location,
		default_event_min, max_suggestions, travel_check_enabled
	) VALUES ('default', 'UTC', 9, 18, '', 60, 3, 1)`,

	`CREATE TABLE IF NOT EXISTS exchange_log (
		id         TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		query      TEXT NOT NULL,
		intent     TEXT NOT NULL DEFAULT '',
		reply      TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_exchange_log_created_at
		ON exchange_log(created_at DESC)`,
}
