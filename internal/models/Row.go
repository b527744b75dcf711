package models

// Row is one day of all tracked metrics. Rows are built once per result set
// and never modified afterwards.
type Row struct {
	ID                      int      `json:"id" example:"0"`
	Date                    string   `json:"date" example:"2024-01-01"`
	Temperature2mMax        *float64 `json:"temperature_2m_max"`
	Temperature2mMin        *float64 `json:"temperature_2m_min"`
	Temperature2mMean       *float64 `json:"temperature_2m_mean"`
	ApparentTemperatureMax  *float64 `json:"apparent_temperature_max"`
	ApparentTemperatureMin  *float64 `json:"apparent_temperature_min"`
	ApparentTemperatureMean *float64 `json:"apparent_temperature_mean"`
}

// Value returns the row's value for a metric, nil when missing.
func (r Row) Value(m Metric) *float64 {
	switch m {
	case TemperatureMax:
		return r.Temperature2mMax
	case TemperatureMin:
		return r.Temperature2mMin
	case TemperatureMean:
		return r.Temperature2mMean
	case ApparentTemperatureMax:
		return r.ApparentTemperatureMax
	case ApparentTemperatureMin:
		return r.ApparentTemperatureMin
	case ApparentTemperatureMean:
		return r.ApparentTemperatureMean
	}
	return nil
}

// FilterByDate returns the index of the row with the matching date, or -1 if not found.
func FilterByDate(rows []Row, date string) int {
	for i, r := range rows {
		if r.Date == date {
			return i
		}
	}
	return -1
}
