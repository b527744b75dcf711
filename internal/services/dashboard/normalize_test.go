package dashboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/services/dashboard"
)

func validQuery() models.Query {
	return models.Query{
		Latitude:  "40.7128",
		Longitude: "-74.0060",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-14",
	}
}

func TestNormalize(t *testing.T) {
	params := dashboard.Normalize(validQuery())

	assert.Equal(t, "40.7128", params.Latitude)
	assert.Equal(t, "-74.0060", params.Longitude)
	assert.Equal(t, "2024-01-01", params.StartDate)
	assert.Equal(t, "2024-01-14", params.EndDate)
	assert.Equal(t, "auto", params.Timezone)
	assert.Equal(t,
		"temperature_2m_max,temperature_2m_min,temperature_2m_mean,"+
			"apparent_temperature_max,apparent_temperature_min,apparent_temperature_mean",
		params.Daily)

	values := params.Values()
	assert.Equal(t, "40.7128", values.Get("latitude"))
	assert.Equal(t, "-74.0060", values.Get("longitude"))
	assert.Equal(t, "2024-01-01", values.Get("start_date"))
	assert.Equal(t, "2024-01-14", values.Get("end_date"))
	assert.Equal(t, params.Daily, values.Get("daily"))
	assert.Equal(t, "auto", values.Get("timezone"))
}

func TestNormalize_DoesNotValidate(t *testing.T) {
	params := dashboard.Normalize(models.Query{Latitude: "north"})
	assert.Equal(t, "north", params.Latitude)
	assert.Empty(t, params.StartDate)
}

func TestNormalize_EndBeforeStartPassesThrough(t *testing.T) {
	q := validQuery()
	q.StartDate, q.EndDate = q.EndDate, q.StartDate

	require.NoError(t, dashboard.ValidateQuery(q))
	params := dashboard.Normalize(q)
	assert.Equal(t, "2024-01-14", params.StartDate)
	assert.Equal(t, "2024-01-01", params.EndDate)
}

func TestValidateQuery(t *testing.T) {
	assert.NoError(t, dashboard.ValidateQuery(validQuery()))

	tests := []struct {
		name   string
		mutate func(q *models.Query)
		field  string
		reason string
	}{
		{"missing latitude", func(q *models.Query) { q.Latitude = "" }, "latitude", "is required"},
		{"non numeric latitude", func(q *models.Query) { q.Latitude = "north" }, "latitude", "must be a number"},
		{"latitude out of range", func(q *models.Query) { q.Latitude = "91" }, "latitude", "must be between -90 and 90"},
		{"longitude out of range", func(q *models.Query) { q.Longitude = "-181" }, "longitude", "must be between -180 and 180"},
		{"missing start", func(q *models.Query) { q.StartDate = "" }, "start_date", "is required"},
		{"bad end date", func(q *models.Query) { q.EndDate = "2024-02-30" }, "end_date", "must be a date in YYYY-MM-DD format"},
		{"wrong date layout", func(q *models.Query) { q.StartDate = "01/02/2024" }, "start_date", "must be a date in YYYY-MM-DD format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuery()
			tt.mutate(&q)

			err := dashboard.ValidateQuery(q)
			require.Error(t, err)

			var verr *dashboard.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
			assert.Equal(t, tt.reason, verr.Fields[0].Reason)
			assert.Contains(t, err.Error(), tt.field+": "+tt.reason)
		})
	}
}

func TestValidateQuery_ReportsEveryField(t *testing.T) {
	err := dashboard.ValidateQuery(models.Query{})

	var verr *dashboard.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 4)
}
