// Copyright (c) 2026 Maya Westlake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/mwestlake/pulseboard/models"
)

func newSQLStore(t *testing.T) *SQLStore {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// In-memory sqlite is per-connection; keep the pool at one.
	db.SetMaxOpenConns(1)

	st, err := NewSQLStore(db, "sqlite")
	require.NoError(t, err)
	return st
}

func TestSQLStoreLoadEmpty(t *testing.T) {
	st := newSQLStore(t)

	ds, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, ds.Clients)
	assert.Equal(t, 1, ds.NextClientID)
	assert.Equal(t, 1, ds.NextResponseID)
}

func TestSQLStoreRoundTrip(t *testing.T) {
	st := newSQLStore(t)
	require.NoError(t, st.Save(sampleDataset()))

	got, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, sampleDataset(), got)
}

func TestSQLStoreSaveReplacesDocument(t *testing.T) {
	st := newSQLStore(t)
	require.NoError(t, st.Save(sampleDataset()))

	ds := models.NewDataset()
	ds.NextClientID = 10
	require.NoError(t, st.Save(ds))

	got, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, got.Clients)
	assert.Equal(t, 10, got.NextClientID)
}

func TestSQLStoreUpdate(t *testing.T) {
	st := newSQLStore(t)

	err := st.Update(func(ds *models.Dataset) error {
		ds.Clients = append(ds.Clients, models.Client{ID: ds.NextClientID, Name: "Acme", Active: true})
		ds.NextClientID++
		return nil
	})
	require.NoError(t, err)

	got, err := st.Load()
	require.NoError(t, err)
	require.Len(t, got.Clients, 1)
	assert.Equal(t, "Acme", got.Clients[0].Name)
}

func TestSQLStoreSchemaIsIdempotent(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)

	_, err = NewSQLStore(db, "sqlite")
	require.NoError(t, err)
	_, err = NewSQLStore(db, "sqlite")
	require.NoError(t, err)
}
