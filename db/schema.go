// Copyright (c) 2026 Heavens Gate Events.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Vote records: one row per accepted submission
CREATE TABLE IF NOT EXISTS vote_record (
    id TEXT PRIMARY KEY,
    device_id TEXT NOT NULL,
    submitted_at TIMESTAMP NOT NULL,
    ip_hash TEXT,
    user_agent TEXT
);

CREATE INDEX IF NOT EXISTS idx_vote_record_device ON vote_record(device_id);

-- Vote choices: one row per (category, nominee) selection in a record.
-- device_id is denormalized onto the choice so UNIQUE (device_id,
-- category_id) holds even when two submissions from the same device race
-- past the overlap check.
CREATE TABLE IF NOT EXISTS vote_choice (
    record_id TEXT NOT NULL REFERENCES vote_record(id) ON DELETE CASCADE,
    device_id TEXT NOT NULL,
    category_id TEXT NOT NULL,
    nominee TEXT NOT NULL,
    PRIMARY KEY (record_id, category_id),
    UNIQUE (device_id, category_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_choice_category ON vote_choice(category_id);
`
