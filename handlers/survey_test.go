// Copyright (c) 2026 Maya Westlake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mwestlake/pulseboard/models"
	"github.com/mwestlake/pulseboard/testutil"
)

func TestSubmitSurvey(t *testing.T) {
	st := testutil.SetupTestStore(t)
	h := NewSurveyHandler(st, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/api/survey", models.SubmitSurveyRequest{
		Email: "a@x.com",
		Responses: []models.SurveyEntry{
			{ClientID: 1, Quality: fptr(5)},
			{ClientID: 1, Quality: fptr(3)},
		},
	}, nil)
	w := httptest.NewRecorder()
	h.Submit(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)
	var body models.SubmitSurveyResponse
	testutil.AssertJSON(t, w, &body)
	if !body.Success || body.Count != 2 {
		t.Errorf("Expected success with count 2, got %+v", body)
	}

	ds, err := st.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.Responses) != 2 {
		t.Fatalf("Expected 2 stored responses, got %d", len(ds.Responses))
	}

	week := GetWeekStart(time.Now())
	for _, resp := range ds.Responses {
		if resp.Email != "a@x.com" {
			t.Errorf("Expected email a@x.com, got %s", resp.Email)
		}
		if resp.WeekStart != week {
			t.Errorf("Expected week %s, got %s", week, resp.WeekStart)
		}
	}

	// Ids are monotonic
	if ds.Responses[0].ID != 1 || ds.Responses[1].ID != 2 {
		t.Errorf("Expected ids 1 and 2, got %d and %d", ds.Responses[0].ID, ds.Responses[1].ID)
	}
	if ds.NextResponseID != 3 {
		t.Errorf("Expected next id 3, got %d", ds.NextResponseID)
	}
}

func TestSubmitSurveyMissingEmail(t *testing.T) {
	st := testutil.SetupTestStore(t)
	h := NewSurveyHandler(st, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/api/survey", models.SubmitSurveyRequest{
		Responses: []models.SurveyEntry{{ClientID: 1, Quality: fptr(4)}},
	}, nil)
	w := httptest.NewRecorder()
	h.Submit(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestSubmitSurveyEmptyResponses(t *testing.T) {
	st := testutil.SetupTestStore(t)
	h := NewSurveyHandler(st, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/api/survey", models.SubmitSurveyRequest{
		Email:     "a@x.com",
		Responses: []models.SurveyEntry{},
	}, nil)
	w := httptest.NewRecorder()
	h.Submit(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)

	ds, err := st.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.Responses) != 0 {
		t.Errorf("Expected nothing stored, got %d responses", len(ds.Responses))
	}
}

func TestSubmitSurveyUnknownClientAccepted(t *testing.T) {
	// A response may reference a client that does not exist; it is
	// stored as-is and surfaces as "Unknown" in admin listings.
	st := testutil.SetupTestStore(t)
	h := NewSurveyHandler(st, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/api/survey", models.SubmitSurveyRequest{
		Email:     "a@x.com",
		Responses: []models.SurveyEntry{{ClientID: 99, Momentum: fptr(2)}},
	}, nil)
	w := httptest.NewRecorder()
	h.Submit(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	ds, err := st.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.Responses) != 1 || ds.Responses[0].ClientID != 99 {
		t.Errorf("Expected stored response for client 99, got %+v", ds.Responses)
	}
}

func TestSubmitSurveyInvalidJSON(t *testing.T) {
	st := testutil.SetupTestStore(t)
	h := NewSurveyHandler(st, testutil.GetTestConfig())

	req := httptest.NewRequest("POST", "/api/survey", nil)
	w := httptest.NewRecorder()
	h.Submit(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
