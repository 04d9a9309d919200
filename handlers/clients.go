// Copyright (c) 2026 Maya Westlake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
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

var (
	errDuplicateName  = errors.New("client name already exists")
	errClientNotFound = errors.New("client not found")
)

type ClientHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewClientHandler(st store.Store, cfg cliparse.Config) *ClientHandler {
	return &ClientHandler{store: st, cfg: cfg}
}

// List handles GET /api/clients
// Active clients only, name ascending (case-insensitive).
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	ds, err := h.store.Load()
	if err != nil {
		slog.Error("failed to load dataset", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load data")
		return
	}

	active := []models.ClientSummary{}
	for _, c := range ds.Clients {
		if c.Active {
			active = append(active, models.ClientSummary{ID: c.ID, Name: c.Name})
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return strings.ToLower(active[i].Name) < strings.ToLower(active[j].Name)
	})

	middleware.JSONResponse(w, http.StatusOK, active)
}

// ListAll handles GET /api/clients/all
// Full records regardless of active flag, name ascending.
func (h *ClientHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	ds, err := h.store.Load()
	if err != nil {
		slog.Error("failed to load dataset", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load data")
		return
	}

	clients := append([]models.Client{}, ds.Clients...)
	sort.Slice(clients, func(i, j int) bool {
		return strings.ToLower(clients[i].Name) < strings.ToLower(clients[j].Name)
	})

	middleware.JSONResponse(w, http.StatusOK, clients)
}

// Create handles POST /api/clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClientRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	var created models.Client
	err := h.store.Update(func(ds *models.Dataset) error {
		for _, c := range ds.Clients {
			if strings.EqualFold(c.Name, name) {
				return errDuplicateName
			}
		}
		created = models.Client{
			ID:        ds.NextClientID,
			Name:      name,
			Active:    true,
			CreatedAt: time.Now(),
		}
		ds.NextClientID++
		ds.Clients = append(ds.Clients, created)
		return nil
	})
	if errors.Is(err, errDuplicateName) {
		middleware.ErrorResponse(w, http.StatusConflict, "client name already exists")
		return
	}
	if err != nil {
		slog.Error("failed to create client", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create client")
		return
	}

	slog.Info("client created", "client_id", created.ID, "name", created.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.ClientSummary{ID: created.ID, Name: created.Name})
}

// Update handles PUT /api/clients/{id}
// Changes name and/or active flag; a rename keeps the same
// case-insensitive uniqueness rule as creation.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Client not found")
		return
	}

	var req models.UpdateClientRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var name string
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
		if name == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "name must not be empty")
			return
		}
	}

	err = h.store.Update(func(ds *models.Dataset) error {
		idx := -1
		for i := range ds.Clients {
			if ds.Clients[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return errClientNotFound
		}

		if req.Name != nil {
			for i := range ds.Clients {
				if i != idx && strings.EqualFold(ds.Clients[i].Name, name) {
					return errDuplicateName
				}
			}
			ds.Clients[idx].Name = name
		}
		if req.Active != nil {
			ds.Clients[idx].Active = *req.Active
		}
		return nil
	})
	if errors.Is(err, errClientNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Client not found")
		return
	}
	if errors.Is(err, errDuplicateName) {
		middleware.ErrorResponse(w, http.StatusConflict, "client name already exists")
		return
	}
	if err != nil {
		slog.Error("failed to update client", "client_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update client")
		return
	}

	slog.Info("client updated", "client_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// Delete handles DELETE /api/clients/{id}
// Soft delete: flips the active flag, history stays. Idempotent - an
// unknown id is a no-op and still succeeds.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
		return
	}

	err = h.store.Update(func(ds *models.Dataset) error {
		for i := range ds.Clients {
			if ds.Clients[i].ID == id {
				ds.Clients[i].Active = false
				break
			}
		}
		return nil
	})
	if err != nil {
		slog.Error("failed to delete client", "client_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete client")
		return
	}

	slog.Info("client deactivated", "client_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}
