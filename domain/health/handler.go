package health

import (
	"net/http"
	"runtime"
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/amamam1231/ai-project-312/domain/contact"
	"github.com/amamam1231/ai-project-312/domain/scheduler"
	"github.com/amamam1231/ai-project-312/internal/config"
	"github.com/amamam1231/ai-project-312/internal/version"
)

// Handler handles health check requests
type Handler struct {
	cfg       *config.Config
	scheduler *scheduler.Scheduler
	contact   *contact.Service
	host      *hostProbe
	startAt   time.Time
}

// NewHandler creates a new health handler
func NewHandler(cfg *config.Config, s *scheduler.Scheduler, svc *contact.Service) *Handler {
	return &Handler{
		cfg:       cfg,
		scheduler: s,
		contact:   svc,
		host:      newHostProbe(),
		startAt:   time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health returns the overall service health. A relay that cannot deliver
// only degrades the service: the site still renders and submissions fail
// visibly. Outside local development config validation refuses to start
// in that state.
func (h *Handler) Health(c echo.Context) error {
	checks := map[string]Check{
		"relay":     h.relayCheck(),
		"scheduler": h.schedulerCheck(),
	}

	overallStatus := "healthy"
	for _, check := range checks {
		switch check.Status {
		case "unhealthy":
			overallStatus = "unhealthy"
		case "degraded":
			if overallStatus == "healthy" {
				overallStatus = "degraded"
			}
		}
	}

	statusCode := http.StatusOK
	if overallStatus == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, HealthResponse{
		Status:    overallStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).String(),
		Version:   version.Version,
		Checks:    checks,
	})
}

func (h *Handler) relayCheck() Check {
	if h.cfg.Relay.Provider == config.RelayNoop {
		return Check{Status: "degraded", Message: "no-op relay, submissions are not delivered"}
	}
	if !h.cfg.Relay.IsConfigured(&h.cfg.Email) {
		return Check{Status: "degraded", Message: h.cfg.Relay.Provider + " relay not configured, submissions fail"}
	}
	return Check{Status: "healthy", Message: h.cfg.Relay.Provider}
}

func (h *Handler) schedulerCheck() Check {
	if !h.scheduler.IsRunning() {
		return Check{Status: "unhealthy", Message: "scheduler not running"}
	}
	return Check{Status: "healthy"}
}

// Healthz returns a simple health check (for k8s liveness probe)
func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Ready returns readiness status (for k8s readiness probe)
func (h *Handler) Ready(c echo.Context) error {
	if !h.scheduler.IsRunning() {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":  "not_ready",
			"message": "Scheduler not running",
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status": "ready",
	})
}

// Version returns build information
func (h *Handler) Version(c echo.Context) error {
	return c.JSON(http.StatusOK, version.Info())
}

// Debug returns debug information (only in development)
func (h *Handler) Debug(c echo.Context) error {
	if h.cfg.Environment == "production" {
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	tasks := h.scheduler.ListTasks()
	sort.Strings(tasks)

	return c.JSON(http.StatusOK, map[string]any{
		"environment": h.cfg.Environment,
		"debug":       h.cfg.Debug,
		"go_version":  runtime.Version(),
		"goroutines":  runtime.NumGoroutine(),
		"host":        h.host.sample(c.Request().Context()),
		"memory": map[string]any{
			"alloc_mb":       mem.Alloc / 1024 / 1024,
			"total_alloc_mb": mem.TotalAlloc / 1024 / 1024,
			"sys_mb":         mem.Sys / 1024 / 1024,
			"num_gc":         mem.NumGC,
		},
		"contact": map[string]any{
			"relay_provider":  h.cfg.Relay.Provider,
			"active_sessions": h.contact.ActiveSessions(),
		},
		"scheduler": map[string]any{
			"running": h.scheduler.IsRunning(),
			"tasks":   tasks,
		},
	})
}
