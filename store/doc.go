// Copyright (c) 2026 Maya Westlake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists the dataset as a single whole document.

# The Storage Port

Store is the interface handlers depend on:

	type Store interface {
		Load() (*models.Dataset, error)
		Save(*models.Dataset) error
		Update(func(*models.Dataset) error) error
	}

Every request either loads the whole dataset (reads) or runs a
load-mutate-save cycle through Update (writes). Update holds a mutex
for the full cycle, so concurrent writers serialize instead of losing
updates.

# FileStore

The default backend. One JSON document on disk:

	{
	  "clients": [...],
	  "responses": [...],
	  "nextClientId": 4,
	  "nextResponseId": 17
	}

A missing file loads as an empty dataset. Saves go through a temp file
and rename, so a crash mid-write leaves the previous document intact.

# SQLStore

The same document model persisted as a single row via database/sql:

	db, _ := sql.Open("sqlite", "pulseboard.db")
	st, err := store.NewSQLStore(db, "sqlite")

Supported drivers:

  - sqlite (modernc.org/sqlite)
  - postgres (lib/pq)

NewSQLStore creates the schema if needed - safe to call multiple times.
*/
package store
