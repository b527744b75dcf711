package repositories

import (
	"context"
	"net/http"
	"time"

	"weather-dashboard/config"
	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/logger"
	"weather-dashboard/pkg/metrics"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// DailyRepository fetches daily observations for one point and date range.
type DailyRepository interface {
	Name() string
	FetchDaily(ctx context.Context, params models.DailyParams) (models.RawDailyResponse, error)
}

// InitDailyRepository builds the configured forecast provider client.
func InitDailyRepository(cfg *config.Config, l *logger.Logger, m *metrics.DashboardMetrics) DailyRepository {
	om := cfg.OpenMeteo

	return NewOpenMeteoRepository(
		l,
		&http.Client{Timeout: om.TimeoutDuration()},
		WithBaseURL(om.BaseURL),
		WithRateLimit(om.RateLimit, om.Burst),
		WithBreaker(BreakerSettings{
			MaxRequests:      om.BreakerMaxRequests,
			Interval:         time.Duration(om.BreakerInterval) * time.Second,
			Timeout:          time.Duration(om.BreakerTimeout) * time.Second,
			FailureThreshold: om.BreakerFailureThreshold,
		}),
		WithMetrics(m),
	)
}
