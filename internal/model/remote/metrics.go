package remote

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"max.ks1230/gastos-client/internal/model/state"
)

var (
	fetchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gastos_client",
			Subsystem: "sync",
			Name:      "fetch_failures_total",
		},
		[]string{"collection"},
	)

	staleResponses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gastos_client",
			Subsystem: "sync",
			Name:      "stale_responses_total",
		},
		[]string{"collection"},
	)
)

func countFetchFailure(kind state.Kind) {
	fetchFailures.WithLabelValues(kind.String()).Inc()
}

func countStaleResponse(kind state.Kind) {
	staleResponses.WithLabelValues(kind.String()).Inc()
}
