package models

const (
	ChartXAxisTitle = "Date"
	ChartYAxisTitle = "Temperature (°C)"
)

// MetricSeries holds one metric's values aligned to ChartModel.Labels.
type MetricSeries struct {
	Metric          Metric     `json:"metric" example:"temperature_2m_max"`
	Label           string     `json:"label" example:"Max Temperature (°C)"`
	Values          []*float64 `json:"values"`
	BorderColor     string     `json:"border_color" example:"rgba(255, 69, 58, 1)"`
	BackgroundColor string     `json:"background_color" example:"rgba(255, 69, 58, 0.2)"`
}

// ChartModel is the multi-series line chart handed to chart consumers.
type ChartModel struct {
	Labels     []string       `json:"labels"`
	Series     []MetricSeries `json:"series"`
	XAxisTitle string         `json:"x_axis_title" example:"Date"`
	YAxisTitle string         `json:"y_axis_title" example:"Temperature (°C)"`
}
