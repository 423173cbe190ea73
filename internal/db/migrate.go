package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent, so the
// full list re-runs safely on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS conversations (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		bot_name   TEXT NOT NULL DEFAULT '',
		saved_at   TEXT NOT NULL,
		turn_count INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS conversation_turns (
		id              TEXT PRIMARY KEY,
		conversation_id TEXT NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
		seq             INTEGER NOT NULL,
		speaker         TEXT NOT NULL CHECK(speaker IN ('USER','BOT')),
		text            TEXT NOT NULL,
		created_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_turns_conversation ON conversation_turns(conversation_id, seq)`,

	`CREATE TABLE IF NOT EXISTS topic_counts (
		conversation_id TEXT NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
		intent          TEXT NOT NULL,
		count           INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (conversation_id, intent)
	)`,

	`CREATE TABLE IF NOT EXISTS knowledge_entries (
		key        TEXT PRIMARY KEY,
		response   TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}
