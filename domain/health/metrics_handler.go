package health

import (
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/amamam1231/ai-project-312/domain/scheduler"
)

// MetricsHandler exposes Prometheus metrics and scheduler state
type MetricsHandler struct {
	scheduler  *scheduler.Scheduler
	prometheus http.Handler
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler(s *scheduler.Scheduler) *MetricsHandler {
	return &MetricsHandler{
		scheduler:  s,
		prometheus: promhttp.Handler(),
	}
}

// Prometheus serves the default registry in the text exposition format
func (h *MetricsHandler) Prometheus(c echo.Context) error {
	h.prometheus.ServeHTTP(c.Response(), c.Request())
	return nil
}

// SchedulerMetricsResponse lists the registered housekeeping tasks
type SchedulerMetricsResponse struct {
	Running   bool     `json:"running"`
	Tasks     []string `json:"tasks"`
	Timestamp string   `json:"timestamp"`
}

// SchedulerMetrics returns the state of scheduled tasks
func (h *MetricsHandler) SchedulerMetrics(c echo.Context) error {
	tasks := h.scheduler.ListTasks()
	sort.Strings(tasks)

	return c.JSON(http.StatusOK, SchedulerMetricsResponse{
		Running:   h.scheduler.IsRunning(),
		Tasks:     tasks,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
