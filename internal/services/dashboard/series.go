package dashboard

import (
	"weather-dashboard/internal/models"
)

// BuildChart turns a validated response into one series per metric over the
// shared date axis. The result shares no memory with raw.
func BuildChart(raw models.RawDailyResponse) models.ChartModel {
	labels := make([]string, len(raw.Time))
	copy(labels, raw.Time)

	series := make([]models.MetricSeries, 0, len(models.Metrics))
	for _, m := range models.Metrics {
		series = append(series, models.MetricSeries{
			Metric:          m,
			Label:           m.Label(),
			Values:          cloneValues(raw.Values(m)),
			BorderColor:     m.BorderColor(),
			BackgroundColor: m.BackgroundColor(),
		})
	}

	return models.ChartModel{
		Labels:     labels,
		Series:     series,
		XAxisTitle: models.ChartXAxisTitle,
		YAxisTitle: models.ChartYAxisTitle,
	}
}

// cloneValues deep-copies a nullable series; nil becomes an empty slice.
func cloneValues(values []*float64) []*float64 {
	out := make([]*float64, len(values))
	for i, v := range values {
		out[i] = cloneValue(v)
	}
	return out
}

func cloneValue(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
