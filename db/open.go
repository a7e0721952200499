// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quickly-review/cliparse"
)

// database/sql driver names
const (
	driverPostgres = "postgres"
	driverSQLite   = "sqlite"
)

// Open connects to the configured backend and prepares its schema.
// The caller owns the returned Store and must Close it.
func Open(ctx context.Context, cfg cliparse.Config) (Store, error) {
	switch cfg.DatabaseType {
	case cliparse.DatabaseMongo:
		return OpenMongo(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	case cliparse.DatabasePostgres:
		return OpenSQL(ctx, driverPostgres, cfg.DatabaseURL)
	case cliparse.DatabaseSQLite:
		return OpenSQL(ctx, driverSQLite, cfg.DatabaseURL)
	}

	return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
}

// OpenSQL opens a database/sql connection pool, pings it and creates the schema
func OpenSQL(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	conn, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// One writer at a time; also keeps a :memory: database on a single connection
	if driver == driverSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := CreateSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}

	return NewSQLStore(conn), nil
}
