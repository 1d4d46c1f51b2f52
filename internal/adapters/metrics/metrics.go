// Package metrics records build and cache outcomes as Prometheus metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.trai.ch/bento/internal/core/ports"
)

var _ ports.BuildMetrics = (*Metrics)(nil)

// Metrics implements ports.BuildMetrics on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	// Step latencies by component, step and result
	StepDuration *prometheus.HistogramVec

	// Component builds by result and trigger
	ComponentBuilds *prometheus.CounterVec

	// Cache server lookups by result
	CacheLookups *prometheus.CounterVec
}

// New creates a Metrics instance with all build metrics registered on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		StepDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bento_build_step_duration_seconds",
			Help:    "Duration of component build steps",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"component", "step", "result"}),

		ComponentBuilds: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bento_component_builds_total",
			Help: "Total component builds by result and trigger",
		}, []string{"component", "trigger", "result"}), // trigger: "build", "rebuild"

		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bento_cache_lookups_total",
			Help: "Total cache server lookups by result",
		}, []string{"result"}),
	}
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveStep records the duration of one build step.
func (m *Metrics) ObserveStep(component, step string, d time.Duration, err error) {
	if m != nil {
		m.StepDuration.WithLabelValues(component, step, result(err)).Observe(d.Seconds())
	}
}

// ObserveComponent records a finished component build.
func (m *Metrics) ObserveComponent(component string, rebuild bool, err error) {
	if m == nil {
		return
	}
	trigger := "build"
	if rebuild {
		trigger = "rebuild"
	}
	m.ComponentBuilds.WithLabelValues(component, trigger, result(err)).Inc()
}

// ObserveCacheLookup records a cache server lookup.
func (m *Metrics) ObserveCacheLookup(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheLookups.WithLabelValues("hit").Inc()
		return
	}
	m.CacheLookups.WithLabelValues("miss").Inc()
}

func result(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
