// Package metrics provides Prometheus metrics for the dashboard pipeline and
// its upstream forecast calls.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Submission outcomes recorded by RecordSubmission.
const (
	OutcomeSuccess    = "success"
	OutcomeNoData     = "no_data"
	OutcomeTransport  = "transport_error"
	OutcomeMisaligned = "misaligned"
	OutcomeStale      = "stale"
)

// DashboardMetrics groups the collectors of the service. A nil
// *DashboardMetrics is valid and records nothing.
type DashboardMetrics struct {
	submissionsTotal      *prometheus.CounterVec
	runsTotal             *prometheus.CounterVec
	upstreamRequestsTotal *prometheus.CounterVec
	upstreamDuration      *prometheus.HistogramVec
	installedRows         prometheus.Gauge
	generation            prometheus.Gauge
}

// NewDashboardMetrics creates the collectors and registers them on registry.
func NewDashboardMetrics(registry prometheus.Registerer) (*DashboardMetrics, error) {
	m := &DashboardMetrics{
		submissionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_submissions_total",
				Help: "Total number of dashboard query submissions by outcome",
			},
			[]string{"outcome"},
		),
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_stateless_runs_total",
				Help: "Total number of one-shot queries that install nothing, by outcome",
			},
			[]string{"outcome"},
		),
		upstreamRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_upstream_requests_total",
				Help: "Total number of forecast provider requests by provider and status",
			},
			[]string{"provider", "status"},
		),
		upstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_upstream_request_duration_seconds",
				Help:    "Time taken by forecast provider requests",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
			},
			[]string{"provider"},
		),
		installedRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dashboard_installed_rows",
			Help: "Number of table rows in the currently installed result set",
		}),
		generation: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dashboard_latest_generation",
			Help: "Generation number of the most recently started submission",
		}),
	}

	if err := registry.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Describe implements the Collector interface
func (m *DashboardMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.submissionsTotal.Describe(ch)
	m.runsTotal.Describe(ch)
	m.upstreamRequestsTotal.Describe(ch)
	m.upstreamDuration.Describe(ch)
	m.installedRows.Describe(ch)
	m.generation.Describe(ch)
}

// Collect implements the Collector interface
func (m *DashboardMetrics) Collect(ch chan<- prometheus.Metric) {
	m.submissionsTotal.Collect(ch)
	m.runsTotal.Collect(ch)
	m.upstreamRequestsTotal.Collect(ch)
	m.upstreamDuration.Collect(ch)
	m.installedRows.Collect(ch)
	m.generation.Collect(ch)
}

func (m *DashboardMetrics) RecordSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

// RecordRun counts a stateless query; it never touches the submission metrics.
func (m *DashboardMetrics) RecordRun(outcome string) {
	if m == nil {
		return
	}
	m.runsTotal.WithLabelValues(outcome).Inc()
}

func (m *DashboardMetrics) RecordUpstreamRequest(provider, status string, seconds float64) {
	if m == nil {
		return
	}
	m.upstreamRequestsTotal.WithLabelValues(provider, status).Inc()
	m.upstreamDuration.WithLabelValues(provider).Observe(seconds)
}

func (m *DashboardMetrics) SetInstalledRows(n int) {
	if m == nil {
		return
	}
	m.installedRows.Set(float64(n))
}

func (m *DashboardMetrics) SetGeneration(gen uint64) {
	if m == nil {
		return
	}
	m.generation.Set(float64(gen))
}
