// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StoragePinger checks that the storage backend is reachable.
type StoragePinger interface {
	Ping(ctx context.Context) error
}

// HealthController handles health check endpoints.
type HealthController struct {
	storage StoragePinger
	backend string
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Storage   string `json:"storage"`
	Backend   string `json:"backend"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(storage StoragePinger, backend string) *HealthController {
	return &HealthController{
		storage: storage,
		backend: backend,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its storage backend.
func (h *HealthController) Check(c *gin.Context) {
	storageStatus := "disconnected"
	if h.storage != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.storage.Ping(pingCtx); err != nil {
			slog.Warn("Storage health check failed", "backend", h.backend, "error", err)
		} else {
			storageStatus = "connected"
		}
	}

	response := HealthResponse{
		Status:    "ok",
		Storage:   storageStatus,
		Backend:   h.backend,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
