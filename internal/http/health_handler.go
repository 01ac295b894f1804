package http

import (
	"context"
	"net/http"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store pinger
}

func NewHealthHandler(store pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// GET /api/health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:   "Error",
			Database: "Disconnected",
		})
		return
	}

	respondJSON(w, http.StatusOK, healthResponse{
		Status:   "OK",
		Database: "Connected",
	})
}
