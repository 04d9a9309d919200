// Copyright (c) 2026 Maya Westlake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mwestlake/pulseboard/cliparse"
	"github.com/mwestlake/pulseboard/middleware"
	"github.com/mwestlake/pulseboard/models"
	"github.com/mwestlake/pulseboard/store"
)

type SurveyHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewSurveyHandler(st store.Store, cfg cliparse.Config) *SurveyHandler {
	return &SurveyHandler{store: st, cfg: cfg}
}

// Submit handles POST /api/survey
// Bulk submission: one email, one entry per rated client. Every stored
// response is bucketed into the current week and is immutable after
// this point. An unknown client_id is stored as-is.
func (h *SurveyHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitSurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Email) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email is required")
		return
	}
	if len(req.Responses) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "responses must not be empty")
		return
	}

	now := time.Now()
	week := GetWeekStart(now)

	count := 0
	err := h.store.Update(func(ds *models.Dataset) error {
		for _, entry := range req.Responses {
			ds.Responses = append(ds.Responses, models.SurveyResponse{
				ID:               ds.NextResponseID,
				Email:            req.Email,
				ClientID:         entry.ClientID,
				ObjectiveClarity: entry.ObjectiveClarity,
				NextWeekPlan:     entry.NextWeekPlan,
				ResourcingLoad:   entry.ResourcingLoad,
				Momentum:         entry.Momentum,
				Quality:          entry.Quality,
				OrganicGrowth:    entry.OrganicGrowth,
				WeekStart:        week,
				SubmittedAt:      now,
			})
			ds.NextResponseID++
			count++
		}
		return nil
	})
	if err != nil {
		slog.Error("failed to store survey", "email", req.Email, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store survey")
		return
	}

	slog.Info("survey submitted", "email", req.Email, "count", count, "week", week)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitSurveyResponse{Success: true, Count: count})
}
