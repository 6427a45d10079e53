// Package metrics records model assembly metrics on a private Prometheus registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/blanket/pkg/domain"
)

// Build results.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics holds the assembler collectors.
type Metrics struct {
	registry *prometheus.Registry
	builds   *prometheus.CounterVec
	duration prometheus.Histogram
	entities *prometheus.GaugeVec
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		builds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blanket_builds_total",
				Help: "Total number of model assemblies by result",
			},
			[]string{"result"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "blanket_build_duration_seconds",
				Help:    "Duration of model assemblies",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
		entities: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "blanket_model_entities",
				Help: "Entity counts of the last assembled model",
			},
			[]string{"kind"},
		),
	}
	m.registry.MustRegister(m.builds, m.duration, m.entities)
	return m
}

// ObserveBuild records one assembly.
func (m *Metrics) ObserveBuild(d time.Duration, model *domain.Model, err error) {
	m.duration.Observe(d.Seconds())
	if err != nil {
		m.builds.WithLabelValues(ResultError).Inc()
		return
	}
	m.builds.WithLabelValues(ResultOK).Inc()
	if model == nil {
		return
	}
	m.entities.WithLabelValues("materials").Set(float64(len(model.Materials)))
	m.entities.WithLabelValues("surfaces").Set(float64(len(model.Geometry.Surfaces)))
	m.entities.WithLabelValues("cells").Set(float64(len(model.Geometry.Cells)))
	m.entities.WithLabelValues("filters").Set(float64(len(model.Filters)))
	m.entities.WithLabelValues("tallies").Set(float64(len(model.Tallies)))
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// WriteToTextfile dumps the registry for the node exporter textfile collector.
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
