// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Review server.

Quickly Review collects short reviews (name, 1-5 star rating, text, and an
optional image URL) through a JSON API or a plain HTML form, and lists
them back as JSON or as a rendered page.

# Starting the Server

With no configuration the server listens on port 5000 and stores reviews
in a local SQLite file:

	go run .

Or point it at another backend:

	DATABASE_URL=postgres://... go run .
	go run . -p 8080 -d "mongodb://localhost:27017" -db-name review

A .env file in the working directory is loaded first if present.

# Configuration

  - PORT (-p): Server port (default: 5000)
  - DATABASE_URL (-d): Connection string, MONGODB_URI is also accepted (default: file:reviews.db)
  - DATABASE_TYPE (-t): sqlite, postgres, or mongo (default: inferred from the URL)
  - DATABASE_NAME (-db-name): Mongo database name (default: review)
  - RENDER_MODE (-render): json or html for GET /reviews (default: json)
  - LANDING_PATH (-landing): / or /home (default: /)
  - LOG_LEVEL (-log-level): debug, info, warn, or error (default: info)

# Architecture

  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - reviews: Validation and the submit/list service
  - db: SQL and Mongo stores
  - views: Embedded landing page and review list templates
  - middleware: CORS, recovery, logging, JSON helpers
  - metrics: Prometheus collectors
  - models: Request/response types
  - cliparse: Configuration parsing

On SIGINT or SIGTERM the server stops accepting connections, waits up to
ten seconds for in-flight requests, then closes the store.
*/
package main
