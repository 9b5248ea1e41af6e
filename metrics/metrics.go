package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	remoteRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "esrace_remote_requests_total",
			Help: "Total number of requests to the vrace API",
		},
		[]string{"endpoint", "outcome"},
	)
	enrichmentTasksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "esrace_enrichment_tasks_total",
			Help: "Total number of per-runner enrichment steps",
		},
		[]string{"step", "outcome"},
	)
	enrichmentInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "esrace_enrichment_in_flight",
			Help: "Number of runner enrichment tasks currently in flight",
		},
	)
	eventLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "esrace_event_loads_total",
			Help: "Total number of event leaderboard loads",
		},
		[]string{"outcome"},
	)
)

// Register registers all collectors. Call this once from main.go.
func Register() {
	prometheus.MustRegister(remoteRequestsTotal)
	prometheus.MustRegister(enrichmentTasksTotal)
	prometheus.MustRegister(enrichmentInFlight)
	prometheus.MustRegister(eventLoadsTotal)
}

func RemoteRequest(endpoint string, err error) {
	remoteRequestsTotal.WithLabelValues(endpoint, outcome(err)).Inc()
}

func EnrichmentTask(step string, err error) {
	enrichmentTasksTotal.WithLabelValues(step, outcome(err)).Inc()
}

func EnrichmentStarted() {
	enrichmentInFlight.Inc()
}

func EnrichmentFinished() {
	enrichmentInFlight.Dec()
}

func EventLoad(err error) {
	eventLoadsTotal.WithLabelValues(outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
