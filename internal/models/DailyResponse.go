package models

// RawDailyResponse mirrors the `daily` object of an Open-Meteo response.
// Index i of every array refers to the calendar day Time[i]. A metric the
// service did not return is left nil; null entries decode to nil pointers.
type RawDailyResponse struct {
	Time                    []string   `json:"time"`
	Temperature2mMax        []*float64 `json:"temperature_2m_max"`
	Temperature2mMin        []*float64 `json:"temperature_2m_min"`
	Temperature2mMean       []*float64 `json:"temperature_2m_mean"`
	ApparentTemperatureMax  []*float64 `json:"apparent_temperature_max"`
	ApparentTemperatureMin  []*float64 `json:"apparent_temperature_min"`
	ApparentTemperatureMean []*float64 `json:"apparent_temperature_mean"`
}

// Values returns the array for the given metric, or nil when it is absent.
func (r *RawDailyResponse) Values(m Metric) []*float64 {
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

// OpenMeteoErrorResponse is the body Open-Meteo sends with a 4xx status.
type OpenMeteoErrorResponse struct {
	Error   bool   `json:"error"`
	Reason  string `json:"reason"`
	Message string `json:"message,omitempty"`
}
