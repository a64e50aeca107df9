// Package metrics exposes Prometheus collectors for the ranking
// pipeline. Collectors are registered on the default registry and
// served on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rankingsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "press_rankings_served_total",
		Help: "Ranking responses served, by algorithm.",
	}, []string{"algorithm"})

	rankingsDegraded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "press_rankings_degraded_total",
		Help: "Rankings that fell back to a degraded path, by algorithm and reason.",
	}, []string{"algorithm", "reason"})

	rankingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "press_ranking_duration_seconds",
		Help:    "End-to-end ranking latency, by algorithm.",
		Buckets: prometheus.DefBuckets,
	}, []string{"algorithm"})

	servedLogFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "press_served_log_failures_total",
		Help: "Fire-and-forget served-log writes that failed.",
	})
)

func RecordServed(algorithm string, count int) {
	rankingsServed.WithLabelValues(algorithm).Add(float64(count))
}

func RecordDegraded(algorithm, reason string) {
	rankingsDegraded.WithLabelValues(algorithm, reason).Inc()
}

func ObserveRankingDuration(algorithm string, d time.Duration) {
	rankingDuration.WithLabelValues(algorithm).Observe(d.Seconds())
}

func RecordServedLogFailure() {
	servedLogFailures.Inc()
}
