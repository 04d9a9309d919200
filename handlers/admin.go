// Copyright (c) 2026 Maya Westlake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mwestlake/pulseboard/cliparse"
	"github.com/mwestlake/pulseboard/middleware"
	"github.com/mwestlake/pulseboard/models"
	"github.com/mwestlake/pulseboard/store"
)

type AdminHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewAdminHandler(st store.Store, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{store: st, cfg: cfg}
}

// GetResponses handles GET /api/admin/responses?week=&client_id=
// Every response for the week, annotated with the resolved client name
// ("Unknown" when the id matches no client), sorted by client name
// ascending then submission time descending.
func (h *AdminHandler) GetResponses(w http.ResponseWriter, r *http.Request) {
	week := r.URL.Query().Get("week")
	if week == "" {
		week = GetWeekStart(time.Now())
	}

	var clientID *int
	if raw := r.URL.Query().Get("client_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "client_id must be numeric")
			return
		}
		clientID = &id
	}

	ds, err := h.store.Load()
	if err != nil {
		slog.Error("failed to load dataset", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load data")
		return
	}

	names := make(map[int]string, len(ds.Clients))
	for _, c := range ds.Clients {
		names[c.ID] = c.Name
	}

	annotated := []models.AnnotatedResponse{}
	for _, resp := range ds.Responses {
		if resp.WeekStart != week {
			continue
		}
		if clientID != nil && resp.ClientID != *clientID {
			continue
		}
		name, ok := names[resp.ClientID]
		if !ok {
			name = "Unknown"
		}
		annotated = append(annotated, models.AnnotatedResponse{SurveyResponse: resp, ClientName: name})
	}

	sort.Slice(annotated, func(i, j int) bool {
		ni := strings.ToLower(annotated[i].ClientName)
		nj := strings.ToLower(annotated[j].ClientName)
		if ni != nj {
			return ni < nj
		}
		return annotated[i].SubmittedAt.After(annotated[j].SubmittedAt)
	})

	middleware.JSONResponse(w, http.StatusOK, annotated)
}

// GetStats handles GET /api/admin/stats?week=
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	week := r.URL.Query().Get("week")
	if week == "" {
		week = GetWeekStart(time.Now())
	}

	ds, err := h.store.Load()
	if err != nil {
		slog.Error("failed to load dataset", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load data")
		return
	}

	emails := make(map[string]struct{})
	covered := make(map[int]struct{})
	total := 0
	for _, resp := range ds.Responses {
		if resp.WeekStart != week {
			continue
		}
		emails[resp.Email] = struct{}{}
		covered[resp.ClientID] = struct{}{}
		total++
	}

	activeClients := 0
	for _, c := range ds.Clients {
		if c.Active {
			activeClients++
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.WeekStats{
		Week:              week,
		UniqueRespondents: len(emails),
		ClientsCovered:    len(covered),
		ActiveClients:     activeClients,
		TotalResponses:    total,
	})
}
