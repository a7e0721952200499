// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Plain SQL shared by PostgreSQL and SQLite
const schema = `
-- Reviews
CREATE TABLE IF NOT EXISTS review (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL CHECK (name <> ''),
    rating INTEGER NOT NULL CHECK (rating >= 1 AND rating <= 5),
    review TEXT NOT NULL CHECK (review <> ''),
    image_url TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_review_created_at ON review(created_at);
`
