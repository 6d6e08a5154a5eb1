// Package metrics exports colony progress as Prometheus metrics.
//
// Collector implements aco.Observer; attach it with aco.WithObserver and it
// records every completed iteration:
//
//   - antcolony_solver_iterations_total   (counter)
//   - antcolony_solver_improvements_total (counter)
//   - antcolony_solver_best_distance      (gauge, best-ever tour length)
//   - antcolony_solver_iteration_best_distance (gauge)
//   - antcolony_solver_iteration_best_distance_ratio (histogram of
//     iteration best / best-ever, a convergence signal: 1.0 means the colony
//     reproduced the record this iteration)
//
// Metrics are registered on the Registerer passed to NewCollector, so tests
// and parallel experiments can use isolated registries.
//
// # Thread Safety
//
// All metric operations are thread-safe via Prometheus's internal locking.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/antcolony/aco"
)

const (
	metricsNamespace = "antcolony"
	solverSubsystem  = "solver"
)

// Collector holds the solver metrics.
type Collector struct {
	Iterations            prometheus.Counter
	Improvements          prometheus.Counter
	BestDistance          prometheus.Gauge
	IterationBestDistance prometheus.Gauge
	IterationRatio        prometheus.Histogram
}

var _ aco.Observer = (*Collector)(nil)

// NewCollector creates and registers the solver metrics on reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Collector{
		Iterations: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: solverSubsystem,
			Name:      "iterations_total",
			Help:      "Completed colony iterations",
		}),
		Improvements: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: solverSubsystem,
			Name:      "improvements_total",
			Help:      "Iterations that lowered the best-ever tour length",
		}),
		BestDistance: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: solverSubsystem,
			Name:      "best_distance",
			Help:      "Best-ever tour length",
		}),
		IterationBestDistance: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: solverSubsystem,
			Name:      "iteration_best_distance",
			Help:      "Shortest tour length of the latest iteration",
		}),
		IterationRatio: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: solverSubsystem,
			Name:      "iteration_best_distance_ratio",
			Help:      "Iteration best length divided by best-ever length",
			Buckets:   []float64{1, 1.01, 1.02, 1.05, 1.1, 1.25, 1.5, 2},
		}),
	}
}

// OnIteration records one completed iteration.
func (c *Collector) OnIteration(res aco.IterationResult) {
	c.Iterations.Inc()
	if res.Improved {
		c.Improvements.Inc()
	}
	c.BestDistance.Set(res.BestEverDistance)
	c.IterationBestDistance.Set(res.IterationDistance)
	if res.BestEverDistance > 0 {
		c.IterationRatio.Observe(res.IterationDistance / res.BestEverDistance)
	}
}

// Handler returns an HTTP handler serving the metrics gathered by g.
// A nil g uses prometheus.DefaultGatherer.
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		g = prometheus.DefaultGatherer
	}

	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
