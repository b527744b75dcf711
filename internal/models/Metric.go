package models

import (
	"fmt"
	"strings"
)

// Metric identifies one of the tracked daily weather quantities by its
// Open-Meteo variable name.
type Metric string

const (
	TemperatureMax          Metric = "temperature_2m_max"
	TemperatureMin          Metric = "temperature_2m_min"
	TemperatureMean         Metric = "temperature_2m_mean"
	ApparentTemperatureMax  Metric = "apparent_temperature_max"
	ApparentTemperatureMin  Metric = "apparent_temperature_min"
	ApparentTemperatureMean Metric = "apparent_temperature_mean"
)

// Metrics lists the tracked metrics in display order.
var Metrics = [...]Metric{
	TemperatureMax,
	TemperatureMin,
	TemperatureMean,
	ApparentTemperatureMax,
	ApparentTemperatureMin,
	ApparentTemperatureMean,
}

type metricInfo struct {
	label  string
	column string
	rgb    [3]int
}

var metricInfos = map[Metric]metricInfo{
	TemperatureMax:          {label: "Max Temperature (°C)", column: "Max Temp (°C)", rgb: [3]int{255, 69, 58}},
	TemperatureMin:          {label: "Min Temperature (°C)", column: "Min Temp (°C)", rgb: [3]int{52, 199, 89}},
	TemperatureMean:         {label: "Mean Temperature (°C)", column: "Mean Temp (°C)", rgb: [3]int{255, 159, 10}},
	ApparentTemperatureMax:  {label: "Max Apparent Temperature (°C)", column: "Max Apparent Temp (°C)", rgb: [3]int{175, 82, 222}},
	ApparentTemperatureMin:  {label: "Min Apparent Temperature (°C)", column: "Min Apparent Temp (°C)", rgb: [3]int{255, 214, 10}},
	ApparentTemperatureMean: {label: "Mean Apparent Temperature (°C)", column: "Mean Apparent Temp (°C)", rgb: [3]int{90, 200, 250}},
}

// Label returns the chart legend label of the metric.
func (m Metric) Label() string {
	if info, ok := metricInfos[m]; ok {
		return info.label
	}
	return string(m)
}

// Column returns the table column header of the metric.
func (m Metric) Column() string {
	if info, ok := metricInfos[m]; ok {
		return info.column
	}
	return string(m)
}

// BorderColor returns the opaque palette colour used for the metric's line.
func (m Metric) BorderColor() string {
	return m.rgba("1")
}

// BackgroundColor returns the translucent palette colour used for the metric's fill.
func (m Metric) BackgroundColor() string {
	return m.rgba("0.2")
}

// HexColor returns the palette colour as #rrggbb, for terminals.
func (m Metric) HexColor() string {
	info, ok := metricInfos[m]
	if !ok {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", info.rgb[0], info.rgb[1], info.rgb[2])
}

func (m Metric) rgba(alpha string) string {
	info, ok := metricInfos[m]
	if !ok {
		return ""
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", info.rgb[0], info.rgb[1], info.rgb[2], alpha)
}

// DailyParam renders the metrics as the comma-joined value of the `daily` query parameter.
func DailyParam() string {
	names := make([]string, 0, len(Metrics))
	for _, m := range Metrics {
		names = append(names, string(m))
	}
	return strings.Join(names, ",")
}
