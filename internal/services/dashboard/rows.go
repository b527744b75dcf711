package dashboard

import (
	"weather-dashboard/internal/models"
)

// ProjectRows builds one row per date. Row IDs are positional and restart
// at 0 for every response. A metric missing for a day is left nil.
func ProjectRows(raw models.RawDailyResponse) []models.Row {
	rows := make([]models.Row, len(raw.Time))
	for i, date := range raw.Time {
		rows[i] = models.Row{
			ID:                      i,
			Date:                    date,
			Temperature2mMax:        valueAt(raw.Temperature2mMax, i),
			Temperature2mMin:        valueAt(raw.Temperature2mMin, i),
			Temperature2mMean:       valueAt(raw.Temperature2mMean, i),
			ApparentTemperatureMax:  valueAt(raw.ApparentTemperatureMax, i),
			ApparentTemperatureMin:  valueAt(raw.ApparentTemperatureMin, i),
			ApparentTemperatureMean: valueAt(raw.ApparentTemperatureMean, i),
		}
	}
	return rows
}

func valueAt(values []*float64, i int) *float64 {
	if i >= len(values) {
		return nil
	}
	return cloneValue(values[i])
}
