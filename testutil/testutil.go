// Copyright (c) 2026 Maya Westlake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/mwestlake/pulseboard/cliparse"
	"github.com/mwestlake/pulseboard/models"
	"github.com/mwestlake/pulseboard/store"
)

// SetupTestStore creates a file store backed by a fresh temp directory
func SetupTestStore(t *testing.T) *store.FileStore {
	t.Helper()
	return store.NewFileStore(filepath.Join(t.TempDir(), "pulseboard.json"))
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:      3324,
		StoreType: "file",
		DataFile:  "pulseboard.json",
	}
}

// SeedClient inserts a client directly into the store and returns it
func SeedClient(t *testing.T, st store.Store, name string, active bool) models.Client {
	t.Helper()

	var c models.Client
	err := st.Update(func(ds *models.Dataset) error {
		c = models.Client{
			ID:        ds.NextClientID,
			Name:      name,
			Active:    active,
			CreatedAt: time.Now(),
		}
		ds.NextClientID++
		ds.Clients = append(ds.Clients, c)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to seed client: %v", err)
	}
	return c
}

// SeedResponse inserts a survey response directly into the store.
// The caller fills everything but the id; WeekStart must be set.
func SeedResponse(t *testing.T, st store.Store, resp models.SurveyResponse) models.SurveyResponse {
	t.Helper()

	if resp.SubmittedAt.IsZero() {
		resp.SubmittedAt = time.Now()
	}
	err := st.Update(func(ds *models.Dataset) error {
		resp.ID = ds.NextResponseID
		ds.NextResponseID++
		ds.Responses = append(ds.Responses, resp)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to seed response: %v", err)
	}
	return resp
}

// F returns a pointer to a metric value
func F(v float64) *float64 {
	return &v
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
