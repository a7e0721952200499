// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db persists reviews.

# Backends

Store has two implementations:

  - SQLStore: SQLite (default, file:reviews.db) or PostgreSQL via sqlx
  - MongoStore: the "reviews" collection of a MongoDB database

Open picks one from the parsed configuration:

	store, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

# Schema Creation

CreateSchema creates the review table and its created_at index. Safe to
call multiple times - uses IF NOT EXISTS. CHECK constraints reject empty
names, empty review text, and ratings outside 1-5.

EnsureCollection creates the Mongo collection with an equivalent
$jsonSchema validator. An existing collection is left alone.

# Ordering

FindAll returns reviews oldest first, ties broken by id.
*/
package db
