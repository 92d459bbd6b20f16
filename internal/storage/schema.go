package storage

import (
	"database/sql"
	"fmt"
)

const currentSchemaVersion = 1

// initializeSchema creates tables if they do not exist and records the
// schema version. Safe to call on every open.
func (db *DB) initializeSchema() error {
	return db.WithTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER NOT NULL
			)`); err != nil {
			return fmt.Errorf("failed to create schema_version table: %w", err)
		}

		if _, err := tx.Exec(`
			CREATE TABLE IF NOT EXISTS runs (
				id            TEXT PRIMARY KEY,
				project_root  TEXT NOT NULL,
				created_at    TEXT NOT NULL,
				passed        INTEGER NOT NULL,
				total_issues  INTEGER NOT NULL,
				duration_ms   INTEGER NOT NULL,
				report_json   TEXT NOT NULL
			)`); err != nil {
			return fmt.Errorf("failed to create runs table: %w", err)
		}

		if _, err := tx.Exec(`
			CREATE INDEX IF NOT EXISTS idx_runs_created_at
			ON runs(created_at DESC)`); err != nil {
			return fmt.Errorf("failed to create runs index: %w", err)
		}

		var count int
		if err := tx.QueryRow(`SELECT COUNT(*) FROM schema_version`).Scan(&count); err != nil {
			return err
		}
		if count == 0 {
			if _, err := tx.Exec(`INSERT INTO schema_version (version) VALUES (?)`,
				currentSchemaVersion); err != nil {
				return err
			}
		}
		return nil
	})
}

// SchemaVersion returns the stored schema version.
func (db *DB) SchemaVersion() (int, error) {
	var version int
	err := db.conn.QueryRow(`SELECT version FROM schema_version`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}
