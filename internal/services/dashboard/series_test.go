package dashboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/services/dashboard"
)

func TestBuildChart_TwoDays(t *testing.T) {
	raw := fullResponse(2)
	raw.Temperature2mMax = []*float64{f(10), f(12)}

	chart := dashboard.BuildChart(raw)

	assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, chart.Labels)
	require.Len(t, chart.Series, 6)
	for _, s := range chart.Series {
		assert.Len(t, s.Values, 2, s.Label)
	}

	first := chart.Series[0]
	assert.Equal(t, models.TemperatureMax, first.Metric)
	assert.Equal(t, "Max Temperature (°C)", first.Label)
	assert.Equal(t, "rgba(255, 69, 58, 1)", first.BorderColor)
	assert.Equal(t, "rgba(255, 69, 58, 0.2)", first.BackgroundColor)
	assert.InDelta(t, 10, *first.Values[0], 0)
	assert.InDelta(t, 12, *first.Values[1], 0)

	assert.Equal(t, "Date", chart.XAxisTitle)
	assert.Equal(t, "Temperature (°C)", chart.YAxisTitle)
}

func TestBuildChart_SeriesOrderAndLabels(t *testing.T) {
	chart := dashboard.BuildChart(fullResponse(1))

	labels := make([]string, 0, len(chart.Series))
	for _, s := range chart.Series {
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []string{
		"Max Temperature (°C)",
		"Min Temperature (°C)",
		"Mean Temperature (°C)",
		"Max Apparent Temperature (°C)",
		"Min Apparent Temperature (°C)",
		"Mean Apparent Temperature (°C)",
	}, labels)
}

func TestBuildChart_LengthsAlignWithTime(t *testing.T) {
	for _, n := range []int{1, 7, 31, 92} {
		raw := fullResponse(n)
		chart := dashboard.BuildChart(raw)

		assert.Len(t, chart.Labels, len(raw.Time))
		for _, s := range chart.Series {
			assert.Len(t, s.Values, len(raw.Time), "n=%d %s", n, s.Metric)
		}
	}
}

func TestBuildChart_AbsentMetricIsEmptySeries(t *testing.T) {
	raw := fullResponse(3)
	raw.ApparentTemperatureMin = nil

	chart := dashboard.BuildChart(raw)

	s := chart.Series[4]
	assert.Equal(t, models.ApparentTemperatureMin, s.Metric)
	assert.NotNil(t, s.Values)
	assert.Empty(t, s.Values)
}

func TestBuildChart_NullValuesStayNull(t *testing.T) {
	raw := fullResponse(3)
	raw.Temperature2mMean[1] = nil

	chart := dashboard.BuildChart(raw)

	assert.Nil(t, chart.Series[2].Values[1])
	assert.NotNil(t, chart.Series[2].Values[0])
}

func TestBuildChart_Idempotent(t *testing.T) {
	raw := fullResponse(10)
	assert.Equal(t, dashboard.BuildChart(raw), dashboard.BuildChart(raw))
}

func TestBuildChart_SharesNoMemoryWithInput(t *testing.T) {
	raw := fullResponse(2)
	chart := dashboard.BuildChart(raw)

	raw.Time[0] = "changed"
	*raw.Temperature2mMax[0] = 99

	assert.Equal(t, "2024-01-01", chart.Labels[0])
	assert.InDelta(t, 10, *chart.Series[0].Values[0], 0)
}
