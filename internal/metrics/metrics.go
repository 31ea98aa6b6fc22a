// SPDX-License-Identifier: MIT

// Package metrics records solver runs as Prometheus metrics on a private
// registry, so embedding numlab never touches the global default registry.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Prometheus implements the engine's recorder contract.
type Prometheus struct {
	registry *prometheus.Registry

	// runsTotal counts finished runs by terminal status
	runsTotal *prometheus.CounterVec
	// iterations tracks iterations consumed per run
	iterations *prometheus.HistogramVec
	// duration tracks wall time per run in seconds
	duration *prometheus.HistogramVec
	// failuresTotal counts runs that ended in a structured failure
	failuresTotal *prometheus.CounterVec
}

// NewPrometheus registers the solver metrics under namespace.
func NewPrometheus(namespace string) *Prometheus {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Prometheus{
		registry: reg,
		runsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "solver_runs_total",
				Help:      "Total number of solver runs by terminal status",
			},
			[]string{"family", "method", "status"},
		),
		iterations: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "solver_iterations",
				Help:      "Iterations consumed per solver run",
				Buckets:   []float64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000},
			},
			[]string{"family", "method"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "solver_duration_seconds",
				Help:      "Solver run duration in seconds",
				Buckets:   []float64{.00001, .0001, .001, .01, .1, 1},
			},
			[]string{"family", "method"},
		),
		failuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "solver_failures_total",
				Help:      "Total number of solver runs that failed, by failure kind",
			},
			[]string{"family", "method", "kind"},
		),
	}
}

// ObserveRun records a run that produced a result.
func (p *Prometheus) ObserveRun(family, method, status string, iterations int, d time.Duration) {
	p.runsTotal.WithLabelValues(family, method, status).Inc()
	p.iterations.WithLabelValues(family, method).Observe(float64(iterations))
	p.duration.WithLabelValues(family, method).Observe(d.Seconds())
}

// ObserveFailure records a run that ended in a failure of the given kind.
func (p *Prometheus) ObserveFailure(family, method, kind string) {
	p.failuresTotal.WithLabelValues(family, method, kind).Inc()
}

// Gatherer exposes the private registry.
func (p *Prometheus) Gatherer() prometheus.Gatherer { return p.registry }

// WriteText dumps every metric family in the text exposition format.
func (p *Prometheus) WriteText(w io.Writer) error {
	families, err := p.Gatherer().Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}

// Noop discards every observation.
type Noop struct{}

// ObserveRun does nothing.
func (Noop) ObserveRun(string, string, string, int, time.Duration) {}

// ObserveFailure does nothing.
func (Noop) ObserveFailure(string, string, string) {}
