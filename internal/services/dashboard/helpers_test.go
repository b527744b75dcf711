package dashboard_test

import (
	"fmt"

	"weather-dashboard/internal/models"
)

func f(v float64) *float64 { return &v }

func constSeries(n int, v float64) []*float64 {
	out := make([]*float64, n)
	for i := range out {
		out[i] = f(v + float64(i))
	}
	return out
}

func dates(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("2024-01-%02d", i+1)
	}
	return out
}

// fullResponse returns an aligned response covering n days.
func fullResponse(n int) models.RawDailyResponse {
	return models.RawDailyResponse{
		Time:                    dates(n),
		Temperature2mMax:        constSeries(n, 10),
		Temperature2mMin:        constSeries(n, 0),
		Temperature2mMean:       constSeries(n, 5),
		ApparentTemperatureMax:  constSeries(n, 8),
		ApparentTemperatureMin:  constSeries(n, -2),
		ApparentTemperatureMean: constSeries(n, 3),
	}
}
