package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/services/dashboard"
)

func fp(v float64) *float64 { return &v }

func lineWith(t *testing.T, text, needle string) string {
	t.Helper()
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, needle) {
			return line
		}
	}
	t.Fatalf("no line contains %q in:\n%s", needle, text)
	return ""
}

func TestSummarize(t *testing.T) {
	lo, hi, mean, missing, ok := summarize([]*float64{fp(2), nil, fp(-1), fp(5)}, 4)
	require.True(t, ok)
	assert.InDelta(t, -1, lo, 0)
	assert.InDelta(t, 5, hi, 0)
	assert.InDelta(t, 2, mean, 1e-9)
	assert.Equal(t, 1, missing)

	_, _, _, missing, ok = summarize([]*float64{}, 3)
	assert.False(t, ok)
	assert.Equal(t, 3, missing)
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "▁▄█", sparkline([]*float64{fp(0), fp(5), fp(10)}, 10))
	assert.Equal(t, "▁ █", sparkline([]*float64{fp(1), nil, fp(3)}, 10))
	assert.Equal(t, "▁▁", sparkline([]*float64{fp(4), fp(4)}, 10), "flat series")
	assert.Equal(t, "  ", sparkline([]*float64{nil, nil}, 10))
	assert.Empty(t, sparkline(nil, 10))

	values := make([]*float64, 100)
	for i := range values {
		values[i] = fp(float64(i))
	}
	assert.Equal(t, 20, len([]rune(sparkline(values, 20))), "sampled down to width")
}

func TestRenderChartSummary(t *testing.T) {
	chart := models.ChartModel{
		Labels:     []string{"2024-01-01", "2024-01-02"},
		XAxisTitle: models.ChartXAxisTitle,
		Series: []models.MetricSeries{
			{Metric: models.TemperatureMax, Label: "Max Temperature (°C)", Values: []*float64{fp(10), fp(12)}},
			{Metric: models.TemperatureMin, Label: "Min Temperature (°C)", Values: []*float64{}},
		},
	}

	var out bytes.Buffer
	require.NoError(t, renderChartSummary(&out, chart))

	text := out.String()
	assert.Contains(t, text, "Date: 2024-01-01 .. 2024-01-02 (2 days)")

	maxLine := lineWith(t, text, "Max Temperature (°C)")
	assert.Contains(t, maxLine, "▁█")
	assert.Contains(t, maxLine, "min 10.0  max 12.0  mean 11.0")
	assert.NotContains(t, maxLine, "missing")

	minLine := lineWith(t, text, "Min Temperature (°C)")
	assert.Contains(t, minLine, "no values")
	assert.Contains(t, minLine, "missing 2")
}

func TestRenderTable(t *testing.T) {
	rows := []models.Row{
		{ID: 0, Date: "2024-01-01", Temperature2mMax: fp(3.14)},
		{ID: 1, Date: "2024-01-02"},
	}
	page := dashboard.NewPage(rows, dashboard.NewPageState(len(rows)))

	var out bytes.Buffer
	require.NoError(t, renderTable(&out, page))

	text := out.String()
	header := lineWith(t, text, "Date")
	for _, m := range models.Metrics {
		assert.Contains(t, header, m.Column())
	}

	first := lineWith(t, text, "2024-01-01")
	assert.Contains(t, first, "3.1")
	assert.Contains(t, first, missingValue)
	assert.Contains(t, text, "│")

	assert.Contains(t, text, "<< < Page 1 of 1 > >> Show 10")
}

func TestRenderTable_MiddlePage(t *testing.T) {
	rows := make([]models.Row, 25)
	for i := range rows {
		rows[i] = models.Row{ID: i, Date: "2024-01-" + string(rune('a'+i))}
	}
	page := dashboard.NewPage(rows, dashboard.NewPageState(len(rows)).NextPage())

	var out bytes.Buffer
	require.NoError(t, renderTable(&out, page))

	text := out.String()
	assert.Contains(t, text, "Page 2 of 3")
	assert.Contains(t, text, "2024-01-k")
	assert.NotContains(t, text, "2024-01-a")
	assert.NotContains(t, text, "2024-01-u")
}

func TestRenderTable_EmptyPage(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, renderTable(&out, dashboard.NewPage(nil, dashboard.NewPageState(0))))
	assert.Contains(t, out.String(), "Page 1 of 1")
}
