package api

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"notes-api/internal/http/response"
	"notes-api/internal/repository"
)

const healthCheckTimeout = 2 * time.Second

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Latency  string `json:"latency,omitempty"`
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	start := time.Now()
	if err := repository.Ping(ctx, s.db); err != nil {
		s.logger.Warn("health check failed", zap.Error(err))
		response.JSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Database: "unreachable",
		}, s.logger)
		return
	}

	response.Success(w, HealthResponse{
		Status:   "healthy",
		Database: "ok",
		Latency:  time.Since(start).String(),
	}, s.logger)
}
