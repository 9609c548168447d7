package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/todolist/internal/platform/version"
)

const readinessTimeout = 2 * time.Second

// HealthCheck names one dependency the service needs before taking traffic.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type readinessResponse struct {
	Status      string            `json:"status"`
	Checks      map[string]string `json:"checks"`
	FailedCheck string            `json:"failed_check,omitempty"`
	Error       string            `json:"error,omitempty"`
}

func (s *Server) registerHealthRoutes() {
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/version", s.handleVersion)
}

func (s *Server) handleLiveness(c echo.Context) error {
	response := map[string]any{
		"status": "ok",
		"uptime": s.clock.Since(s.startTime).Seconds(),
	}
	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write liveness response: %w", err)
	}
	return nil
}

// handleReadiness runs every check under one deadline and reports each
// result; the first failure decides the 503 summary.
func (s *Server) handleReadiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	resp := readinessResponse{Status: "ready", Checks: make(map[string]string, len(s.healthChecks))}
	for _, hc := range s.healthChecks {
		if err := hc.Check(ctx); err != nil {
			resp.Checks[hc.Name] = "failed"
			if resp.FailedCheck == "" {
				resp.Status = "unhealthy"
				resp.FailedCheck = hc.Name
				resp.Error = err.Error()
			}
			continue
		}
		resp.Checks[hc.Name] = "ok"
	}

	status := http.StatusOK
	if resp.FailedCheck != "" {
		status = http.StatusServiceUnavailable
	}
	if err := c.JSON(status, resp); err != nil {
		return fmt.Errorf("failed to write readiness response: %w", err)
	}
	return nil
}

func (s *Server) handleVersion(c echo.Context) error {
	if err := c.JSON(http.StatusOK, version.Get()); err != nil {
		return fmt.Errorf("failed to write version response: %w", err)
	}
	return nil
}
