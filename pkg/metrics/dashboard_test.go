package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardMetrics_Record(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := NewDashboardMetrics(registry)
	require.NoError(t, err)

	m.RecordSubmission(OutcomeSuccess)
	m.RecordSubmission(OutcomeSuccess)
	m.RecordSubmission(OutcomeNoData)
	m.RecordRun(OutcomeSuccess)
	m.RecordUpstreamRequest("open-meteo", "200", 0.12)
	m.SetInstalledRows(25)
	m.SetGeneration(7)

	assert.InDelta(t, 2, testutil.ToFloat64(m.submissionsTotal.WithLabelValues(OutcomeSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.submissionsTotal.WithLabelValues(OutcomeNoData)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.runsTotal.WithLabelValues(OutcomeSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.upstreamRequestsTotal.WithLabelValues("open-meteo", "200")), 0)
	assert.InDelta(t, 25, testutil.ToFloat64(m.installedRows), 0)
	assert.InDelta(t, 7, testutil.ToFloat64(m.generation), 0)

	families, err := registry.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "dashboard_submissions_total")
	assert.Contains(t, names, "dashboard_upstream_request_duration_seconds")
}

func TestDashboardMetrics_DoubleRegistrationFails(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := NewDashboardMetrics(registry)
	require.NoError(t, err)

	_, err = NewDashboardMetrics(registry)
	assert.Error(t, err)
}

func TestDashboardMetrics_NilIsNoop(t *testing.T) {
	var m *DashboardMetrics
	assert.NotPanics(t, func() {
		m.RecordSubmission(OutcomeStale)
		m.RecordRun(OutcomeNoData)
		m.RecordUpstreamRequest("open-meteo", "500", 1)
		m.SetInstalledRows(1)
		m.SetGeneration(1)
	})
}
