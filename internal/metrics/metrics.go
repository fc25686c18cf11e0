// Package metrics exposes Prometheus instruments for path computations.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Computation outcomes used as the "outcome" label.
const (
	OutcomeFound  = "found"
	OutcomeNoPath = "no_path"
	OutcomeError  = "error"
)

var (
	Computations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "allpaths_computations_total",
		Help: "Total number of shortest-path computations, labelled by outcome.",
	}, []string{"outcome"})

	PathsEnumerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "allpaths_paths_enumerated_total",
		Help: "Total number of shortest paths returned across all computations.",
	})

	ComputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "allpaths_compute_duration_ms",
		Help:    "Search plus enumeration latency in milliseconds.",
		Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000},
	})

	MatrixNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "allpaths_matrix_nodes",
		Help: "Node count of the currently loaded adjacency matrix.",
	})

	Reloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "allpaths_matrix_reloads_total",
		Help: "Total number of matrix file reloads, labelled by status.",
	}, []string{"status"})
)

// ObserveComputation records one finished computation.
func ObserveComputation(outcome string, paths int, elapsed time.Duration) {
	Computations.WithLabelValues(outcome).Inc()
	PathsEnumerated.Add(float64(paths))
	ComputeDuration.Observe(float64(elapsed.Microseconds()) / 1000)
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
