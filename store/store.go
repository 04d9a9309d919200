// Copyright (c) 2026 Maya Westlake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/mwestlake/pulseboard/models"
)

// Store is the persistence port. The entire dataset is loaded and saved
// as one document; Update holds a lock for the full
// load-mutate-save cycle so concurrent writers cannot lose updates.
type Store interface {
	Load() (*models.Dataset, error)
	Save(*models.Dataset) error
	Update(func(*models.Dataset) error) error
}

// FileStore persists the dataset as a single JSON document on disk.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the whole document. A missing file yields an empty dataset.
func (s *FileStore) Load() (*models.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save rewrites the whole document.
func (s *FileStore) Save(ds *models.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ds)
}

// Update runs fn on the loaded dataset and saves the result, all under
// the store lock. If fn returns an error nothing is written.
func (s *FileStore) Update(fn func(*models.Dataset) error) error {
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

func (s *FileStore) load() (*models.Dataset, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.NewDataset(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	ds := models.NewDataset()
	if err := json.Unmarshal(data, ds); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return ds, nil
}

// save writes to a temp file and renames it into place, so a crash
// mid-write leaves the previous document intact.
func (s *FileStore) save(ds *models.Dataset) error {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}
