// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS. The DDL sticks to the
// subset understood by both PostgreSQL and SQLite.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Polls: id is the address derived from (authority, title). The UNIQUE
-- constraint keeps the derivation honest even for rows written directly.
CREATE TABLE IF NOT EXISTS poll (
    id TEXT PRIMARY KEY,
    authority TEXT NOT NULL,
    title TEXT NOT NULL,
    start_ts BIGINT NOT NULL,
    end_ts BIGINT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    UNIQUE (authority, title)
);

-- Candidates: one row per candidate, index-aligned with the poll's
-- candidate list; votes is the live tally.
CREATE TABLE IF NOT EXISTS candidate (
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    idx INTEGER NOT NULL,
    name TEXT NOT NULL,
    votes BIGINT NOT NULL DEFAULT 0,
    PRIMARY KEY (poll_id, idx)
);

CREATE INDEX IF NOT EXISTS idx_candidate_poll_id ON candidate(poll_id);

-- Ballots: id is the address derived from (poll, wallet). Allocating a
-- second ballot for the same pair fails on the constraints before any
-- tally is touched.
CREATE TABLE IF NOT EXISTS ballot (
    id TEXT PRIMARY KEY,
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    wallet TEXT NOT NULL,
    has_voted BOOLEAN NOT NULL DEFAULT TRUE,
    cast_at TIMESTAMP NOT NULL,
    ip_hash TEXT,
    user_agent TEXT,
    UNIQUE (poll_id, wallet)
);

CREATE INDEX IF NOT EXISTS idx_ballot_poll_id ON ballot(poll_id);
`
