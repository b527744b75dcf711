package models

import (
	"fmt"
	"net/url"
)

// Query is a user submission as it arrives from form controls.
type Query struct {
	Latitude  string `json:"latitude" validate:"required,numeric,latitude" example:"40.7128"`
	Longitude string `json:"longitude" validate:"required,numeric,longitude" example:"-74.0060"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02" example:"2024-01-01"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02" example:"2024-01-14"`
}

func (q Query) RequestParams() string {
	return fmt.Sprintf("lat: %s lon: %s from: %s to: %s", q.Latitude, q.Longitude, q.StartDate, q.EndDate)
}

// DailyParams is the parameter contract of the Open-Meteo daily forecast call.
type DailyParams struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Daily     string `json:"daily"`
	Timezone  string `json:"timezone"`
}

// Values encodes the parameters as URL query values.
func (p DailyParams) Values() url.Values {
	v := url.Values{}
	v.Set("latitude", p.Latitude)
	v.Set("longitude", p.Longitude)
	v.Set("start_date", p.StartDate)
	v.Set("end_date", p.EndDate)
	v.Set("daily", p.Daily)
	v.Set("timezone", p.Timezone)
	return v
}
