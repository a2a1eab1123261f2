package storage

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	// Migration 1: synthesis ledger
	`CREATE TABLE IF NOT EXISTS synth_runs (
		id              TEXT PRIMARY KEY,
		stack           TEXT NOT NULL,
		account         TEXT NOT NULL DEFAULT '',
		region          TEXT NOT NULL DEFAULT '',
		digest          TEXT NOT NULL,
		resource_count  INTEGER NOT NULL DEFAULT 0,
		missing_lookups INTEGER NOT NULL DEFAULT 0,
		outdir          TEXT NOT NULL DEFAULT '',
		timestamp       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_synth_stack ON synth_runs(stack, account, region);
	CREATE INDEX IF NOT EXISTS idx_synth_timestamp ON synth_runs(timestamp);`,
}

// runMigrations applies pending schema migrations.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version    INTEGER PRIMARY KEY,
		applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("create migration table: %w", err)
	}

	var currentVersion int
	row := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("check migration version: %w", err)
	}

	for i := currentVersion; i < len(migrations); i++ {
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", i+1, err)
		}

		if _, err := tx.Exec(migrations[i]); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("run migration %d: %w", i+1, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", i+1); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %d: %w", i+1, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", i+1, err)
		}
	}

	return nil
}
