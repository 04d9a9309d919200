// Copyright (c) 2026 Maya Westlake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/mwestlake/pulseboard/models"
)

const schema = `
-- The dataset is stored whole, as one JSON document in one row.
CREATE TABLE IF NOT EXISTS dataset (
    id INTEGER PRIMARY KEY,
    doc TEXT NOT NULL
);
`

// SQLStore keeps the same whole-document model as FileStore but persists
// the document as a single row through database/sql. Supported drivers
// are "sqlite" (modernc.org/sqlite) and "postgres" (lib/pq).
type SQLStore struct {
	db *sql.DB
	mu sync.Mutex
	ph string // positional parameter placeholder for the driver
}

// NewSQLStore creates the schema if needed. Safe to call multiple times.
func NewSQLStore(db *sql.DB, driver string) (*SQLStore, error) {
	ph := "?"
	if driver == "postgres" {
		ph = "$1"
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLStore{db: db, ph: ph}, nil
}

func (s *SQLStore) Load() (*models.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *SQLStore) Save(ds *models.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ds)
}

// Update runs fn on the loaded dataset and saves the result, all under
// the store lock. If fn returns an error nothing is written.
func (s *SQLStore) Update(fn func(*models.Dataset) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ds, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(ds); err != nil {
		return err
	}
	return s.save(ds)
}

func (s *SQLStore) load() (*models.Dataset, error) {
	var doc string
	err := s.db.QueryRow("SELECT doc FROM dataset WHERE id = 1").Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NewDataset(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	ds := models.NewDataset()
	if err := json.Unmarshal([]byte(doc), ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	return ds, nil
}

// save replaces the document row in one transaction.
func (s *SQLStore) save(ds *models.Dataset) error {
	data, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM dataset WHERE id = 1"); err != nil {
		return fmt.Errorf("failed to clear dataset: %w", err)
	}
	if _, err := tx.Exec("INSERT INTO dataset (id, doc) VALUES (1, "+s.ph+")", string(data)); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset: %w", err)
	}
	return nil
}
