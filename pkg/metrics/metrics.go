// Package metrics collects Prometheus counters for a single export run.
//
// The exporters are one-shot batch processes, so nothing is served over
// HTTP; the registry is gathered at the end of the run and written to the
// log as a summary.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/grid-esports-engineering/gridDataPortalResources/pkg/logger"
)

// Request outcome label values.
const (
	OutcomeOK          = "ok"
	OutcomeRateLimited = "rate_limited"
	OutcomeTimeout     = "timeout"
	OutcomeDenied      = "denied"
	OutcomeError       = "error"
)

// Row kind label values.
const (
	RowKindPlayer = "player"
	RowKindTeam   = "team"
)

// Manager owns the run-scoped registry and its collectors.
type Manager struct {
	registry *prometheus.Registry

	namespace string

	apiRequests *prometheus.CounterVec
	apiRetries  prometheus.Counter
	rowsEmitted *prometheus.CounterVec
	gamesFailed prometheus.Counter
	seriesDone  prometheus.Counter
}

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace overrides the metric namespace.
func WithNamespace(ns string) Option {
	return func(m *Manager) {
		if ns != "" {
			m.namespace = ns
		}
	}
}

// New builds a Manager with a fresh registry.
func New(opts ...Option) *Manager {
	m := &Manager{
		registry:  prometheus.NewRegistry(),
		namespace: "gridflat",
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)
	m.apiRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "api_requests_total",
		Help:      "Vendor API requests by outcome.",
	}, []string{"outcome"})
	m.apiRetries = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "api_retries_total",
		Help:      "Retried vendor API requests.",
	})
	m.rowsEmitted = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "rows_emitted_total",
		Help:      "Flattened output rows by kind.",
	}, []string{"kind"})
	m.gamesFailed = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "games_failed_total",
		Help:      "Games dropped by validation or decode failures.",
	})
	m.seriesDone = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "series_processed_total",
		Help:      "Series fully processed.",
	})

	return m
}

// APIRequest records one request with the given outcome label.
func (m *Manager) APIRequest(outcome string) {
	m.apiRequests.WithLabelValues(outcome).Inc()
}

// APIRetry records one retried request.
func (m *Manager) APIRetry() {
	m.apiRetries.Inc()
}

// RowsEmitted records n flattened rows of the given kind.
func (m *Manager) RowsEmitted(kind string, n int) {
	m.rowsEmitted.WithLabelValues(kind).Add(float64(n))
}

// GameFailed records one dropped game.
func (m *Manager) GameFailed() {
	m.gamesFailed.Inc()
}

// SeriesProcessed records one completed series.
func (m *Manager) SeriesProcessed() {
	m.seriesDone.Inc()
}

// LogSummary gathers the registry and writes one log line per sample.
func (m *Manager) LogSummary(ctx context.Context, log logger.Logger) {
	families, err := m.registry.Gather()
	if err != nil {
		log.Warn(ctx, "failed to gather run metrics", logger.Error(err))
		return
	}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			fields := []logger.Field{
				logger.Float64("value", metric.GetCounter().GetValue()),
			}
			for _, lp := range metric.GetLabel() {
				fields = append(fields, logger.String(lp.GetName(), lp.GetValue()))
			}
			log.Info(ctx, mf.GetName(), fields...)
		}
	}
}
