package contact

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_submissions_total",
		Help: "Settled contact form submissions by outcome",
	}, []string{"outcome"})

	RelayLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "contact_relay_latency_seconds",
		Help:    "Time from submit to settled phase",
		Buckets: prometheus.DefBuckets,
	})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "contact_form_sessions",
		Help: "Live contact form sessions",
	})

	RejectedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_requests_rejected_total",
		Help: "Contact requests refused before reaching a controller",
	}, []string{"reason"})
)

// outcomeLabel maps a settled attempt to its metric label.
func outcomeLabel(o Outcome) string {
	switch o.Cause.(type) {
	case nil:
		return "succeeded"
	case *ApplicationRejection:
		return "rejected"
	case *TransportFailure:
		return "transport_failure"
	default:
		return "unknown"
	}
}
