package dashboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/services/dashboard"
)

func TestProjectRows_TwoDays(t *testing.T) {
	raw := fullResponse(2)
	raw.Temperature2mMax = []*float64{f(10), f(12)}

	rows := dashboard.ProjectRows(raw)

	require.Len(t, rows, 2)
	assert.Equal(t, 0, rows[0].ID)
	assert.Equal(t, 1, rows[1].ID)
	assert.Equal(t, "2024-01-01", rows[0].Date)
	assert.Equal(t, "2024-01-02", rows[1].Date)
	assert.InDelta(t, 12, *rows[1].Temperature2mMax, 0)
	assert.InDelta(t, -1, *rows[1].ApparentTemperatureMin, 0)
}

func TestProjectRows_DatesAndIDsFollowTime(t *testing.T) {
	for _, n := range []int{0, 1, 15, 60} {
		raw := fullResponse(n)
		rows := dashboard.ProjectRows(raw)

		require.Len(t, rows, len(raw.Time))
		for i, r := range rows {
			assert.Equal(t, i, r.ID)
			assert.Equal(t, raw.Time[i], r.Date)
			for _, m := range models.Metrics {
				assert.InDelta(t, *raw.Values(m)[i], *r.Value(m), 0)
			}
		}
	}
}

func TestProjectRows_MissingValuesAreNil(t *testing.T) {
	raw := fullResponse(3)
	raw.Temperature2mMean = nil
	raw.ApparentTemperatureMax[2] = nil

	rows := dashboard.ProjectRows(raw)

	for _, r := range rows {
		assert.Nil(t, r.Temperature2mMean)
	}
	assert.Nil(t, rows[2].ApparentTemperatureMax)
	assert.NotNil(t, rows[1].ApparentTemperatureMax)
}

func TestProjectRows_Idempotent(t *testing.T) {
	raw := fullResponse(12)
	assert.Equal(t, dashboard.ProjectRows(raw), dashboard.ProjectRows(raw))
}

func TestProjectRows_SharesNoMemoryWithInput(t *testing.T) {
	raw := fullResponse(1)
	rows := dashboard.ProjectRows(raw)

	*raw.Temperature2mMin[0] = 42

	assert.InDelta(t, 0, *rows[0].Temperature2mMin, 0)
}
