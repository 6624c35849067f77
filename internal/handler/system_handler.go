package handlers

import (
	"net/http"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(r.Context()); err != nil {
		h.Logger.WithError(err).Warn("база данных недоступна")
		WriteJSON(w, HealthResponse{Status: "unavailable", Database: "down"}, http.StatusServiceUnavailable)
		return
	}

	WriteJSON(w, HealthResponse{Status: "ok", Database: "up"}, http.StatusOK)
}

func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsService.GetStats(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, stats, http.StatusOK)
}
