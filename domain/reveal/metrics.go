package reveal

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RegionsObserved counts regions registered across rendered page views.
var RegionsObserved = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "site",
	Subsystem: "reveal",
	Name:      "regions_observed_total",
	Help:      "Reveal regions registered by rendered page views",
})
