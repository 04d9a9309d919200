// Copyright (c) 2026 Maya Westlake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mwestlake/pulseboard/handlers"
	"github.com/mwestlake/pulseboard/models"
	"github.com/mwestlake/pulseboard/testutil"
)

// Full request flow: register a client, submit a survey, read the
// dashboard and admin views back through the real routing stack.
func TestSurveyToDashboardFlow(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewRouter(st, testutil.GetTestConfig())

	// Register a client
	req := testutil.MakeRequest("POST", "/api/clients", models.CreateClientRequest{Name: "Acme"}, nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var client models.ClientSummary
	testutil.AssertJSON(t, w, &client)

	// Submit two ratings for it in one survey
	req = testutil.MakeRequest("POST", "/api/survey", models.SubmitSurveyRequest{
		Email: "a@x.com",
		Responses: []models.SurveyEntry{
			{ClientID: client.ID, Quality: testutil.F(5)},
			{ClientID: client.ID, Quality: testutil.F(3)},
		},
	}, nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var submitted models.SubmitSurveyResponse
	testutil.AssertJSON(t, w, &submitted)
	if submitted.Count != 2 {
		t.Fatalf("Expected count 2, got %d", submitted.Count)
	}

	// The dashboard for the current week shows the aggregate
	req = testutil.MakeRequest("GET", "/api/dashboard", nil, nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var dashboard models.DashboardResponse
	testutil.AssertJSON(t, w, &dashboard)
	if len(dashboard.Clients) != 1 {
		t.Fatalf("Expected 1 dashboard entry, got %d", len(dashboard.Clients))
	}

	entry := dashboard.Clients[0]
	if entry.ClientID != client.ID || entry.ResponseCount != 2 {
		t.Errorf("Expected client %d with 2 responses, got %+v", client.ID, entry)
	}
	quality := entry.Metrics[models.FieldQuality]
	if quality.Avg == nil || *quality.Avg != 4.0 || quality.Color != models.ColorGreen {
		t.Errorf("Expected quality avg 4 / green, got %+v", quality)
	}

	// The current week is listed
	req = testutil.MakeRequest("GET", "/api/dashboard/weeks", nil, nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var weeks []string
	testutil.AssertJSON(t, w, &weeks)
	currentWeek := handlers.GetWeekStart(time.Now())
	if len(weeks) != 1 || weeks[0] != currentWeek {
		t.Errorf("Expected weeks [%s], got %v", currentWeek, weeks)
	}

	// Admin stats for the week
	req = testutil.MakeRequest("GET", "/api/admin/stats", nil, nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var stats models.WeekStats
	testutil.AssertJSON(t, w, &stats)
	if stats.UniqueRespondents != 1 || stats.ClientsCovered != 1 || stats.TotalResponses != 2 {
		t.Errorf("Unexpected stats %+v", stats)
	}

	// Soft delete removes the client from the dashboard's scope
	req = testutil.MakeRequest("DELETE", "/api/clients/1", nil, nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	req = testutil.MakeRequest("GET", "/api/dashboard", nil, nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	testutil.AssertJSON(t, w, &dashboard)
	if len(dashboard.Clients) != 0 {
		t.Errorf("Expected no dashboard entries after soft delete, got %d", len(dashboard.Clients))
	}

	// The history is still visible to admins
	req = testutil.MakeRequest("GET", "/api/admin/responses", nil, nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var responses []models.AnnotatedResponse
	testutil.AssertJSON(t, w, &responses)
	if len(responses) != 2 {
		t.Errorf("Expected 2 admin responses, got %d", len(responses))
	}
}
