// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: Connection string (default: file:reviews.db)
  - DatabaseType: sqlite, postgres or mongo (inferred from the URL scheme)
  - DatabaseName: MongoDB database name (default: review)
  - RenderMode: json or html output for GET /reviews (default: json)
  - LandingPath: / or /home (default: /)
  - LogLevel: slog level (default: info)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-db-name    Database name
	-render     Render mode
	-landing    Landing page path
	-log-level  Log level

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d (then MONGODB_URI)
	DATABASE_TYPE → -t
	DATABASE_NAME → -db-name
	RENDER_MODE   → -render
	LANDING_PATH  → -landing
	LOG_LEVEL     → -log-level

CLI flags take precedence over environment variables. main loads a .env
file with godotenv before calling ParseFlags.

# Validation

ParseFlags returns an error for an unknown database type, render mode,
landing path or log level, and for a port outside 1-65535.
*/
package cliparse
