package dashboard_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/services/dashboard"
)

func TestValidateResponse_EmptyTimeIsNoData(t *testing.T) {
	for name, raw := range map[string]models.RawDailyResponse{
		"absent time": {},
		"empty time":  {Time: []string{}, Temperature2mMax: []*float64{}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := dashboard.ValidateResponse(raw, nil)

			var noData *dashboard.NoDataError
			require.ErrorAs(t, err, &noData)
			assert.EqualError(t, err, "No data available for the selected inputs.")
		})
	}
}

func TestValidateResponse_TransportFailure(t *testing.T) {
	cause := errors.New("HTTP error (status 502): 502 Bad Gateway")

	_, err := dashboard.ValidateResponse(models.RawDailyResponse{}, cause)

	var te *dashboard.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, cause.Error(), te.Message)
	assert.EqualError(t, err, cause.Error(), "message is surfaced verbatim")
	assert.ErrorIs(t, err, cause)
}

func TestValidateResponse_KeepsExistingTransportError(t *testing.T) {
	original := &dashboard.TransportError{Message: "dial tcp: connection refused"}

	_, err := dashboard.ValidateResponse(fullResponse(3), original)

	assert.Same(t, original, err)
}

func TestValidateResponse_ValidPassesThroughUnchanged(t *testing.T) {
	raw := fullResponse(3)

	got, err := dashboard.ValidateResponse(raw, nil)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestValidateResponse_AbsentMetricTolerated(t *testing.T) {
	raw := fullResponse(3)
	raw.ApparentTemperatureMean = nil

	_, err := dashboard.ValidateResponse(raw, nil)
	assert.NoError(t, err)
}

func TestValidateResponse_MisalignedMetric(t *testing.T) {
	raw := fullResponse(3)
	raw.Temperature2mMin = raw.Temperature2mMin[:2]

	_, err := dashboard.ValidateResponse(raw, nil)

	var mis *dashboard.MisalignedDataError
	require.ErrorAs(t, err, &mis)
	assert.Equal(t, "temperature_2m_min", mis.Metric)
	assert.Equal(t, 3, mis.Want)
	assert.Equal(t, 2, mis.Got)
	assert.Contains(t, err.Error(), "temperature_2m_min")
}
