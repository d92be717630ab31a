// Package metrics exposes Prometheus collectors for the dataset engine.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gocsvlab"

// Metrics groups the engine collectors on a private registry
type Metrics struct {
	registry *prometheus.Registry

	transformations  *prometheus.CounterVec
	transformLatency *prometheus.HistogramVec
	historyMoves     *prometheus.CounterVec
	datasetsLoaded   *prometheus.CounterVec
	activeSessions   prometheus.Gauge
}

// New creates and registers all collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transformations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transformations_total",
			Help:      "Transformation operator applications by outcome.",
		}, []string{"operator", "status"}),
		transformLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transformation_duration_seconds",
			Help:      "Time spent applying an operator and re-profiling the result.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"operator"}),
		historyMoves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_moves_total",
			Help:      "Undo and redo requests by outcome.",
		}, []string{"direction", "status"}),
		datasetsLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "datasets_loaded_total",
			Help:      "Datasets initialized into a session, by source format.",
		}, []string{"format"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Sessions currently held in memory.",
		}),
	}
	m.registry.MustRegister(
		m.transformations,
		m.transformLatency,
		m.historyMoves,
		m.datasetsLoaded,
		m.activeSessions,
	)
	return m
}

// Registry returns the registry the collectors live on
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveTransformation records one operator application
func (m *Metrics) ObserveTransformation(operator string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.transformations.WithLabelValues(operator, status(err)).Inc()
	if err == nil {
		m.transformLatency.WithLabelValues(operator).Observe(elapsed.Seconds())
	}
}

// ObserveHistoryMove records an undo or redo
func (m *Metrics) ObserveHistoryMove(direction string, err error) {
	if m == nil {
		return
	}
	m.historyMoves.WithLabelValues(direction, status(err)).Inc()
}

// ObserveDatasetLoaded records a dataset initialization
func (m *Metrics) ObserveDatasetLoaded(format string) {
	if m == nil {
		return
	}
	if format == "" {
		format = "records"
	}
	m.datasetsLoaded.WithLabelValues(format).Inc()
}

// SetActiveSessions reports the current session count
func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}
