package dashboard

import (
	"github.com/pkg/errors"

	"weather-dashboard/internal/models"
)

// ValidateResponse classifies the outcome of a provider call. A fetch error
// becomes a *TransportError, an empty date axis a *NoDataError, and a
// present metric array whose length differs from the date axis a
// *MisalignedDataError. Absent metric arrays are accepted. On success raw
// is returned unchanged.
func ValidateResponse(raw models.RawDailyResponse, fetchErr error) (models.RawDailyResponse, error) {
	if fetchErr != nil {
		var te *TransportError
		if errors.As(fetchErr, &te) {
			return models.RawDailyResponse{}, te
		}
		return models.RawDailyResponse{}, &TransportError{Message: fetchErr.Error(), Err: fetchErr}
	}

	if len(raw.Time) == 0 {
		return models.RawDailyResponse{}, &NoDataError{}
	}

	for _, m := range models.Metrics {
		values := raw.Values(m)
		if values != nil && len(values) != len(raw.Time) {
			return models.RawDailyResponse{}, &MisalignedDataError{
				Metric: string(m),
				Want:   len(raw.Time),
				Got:    len(values),
			}
		}
	}

	return raw, nil
}
