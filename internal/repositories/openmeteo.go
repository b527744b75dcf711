package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/logger"
	"weather-dashboard/pkg/metrics"
)

const (
	OpenMeteoName    = "open-meteo"
	OpenMeteoBaseURL = "https://api.open-meteo.com/v1/forecast"
	userAgent        = "weather-dashboard/1.0"
)

// BreakerSettings configures the circuit breaker in front of the provider.
// The breaker opens after FailureThreshold consecutive failures.
type BreakerSettings struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

var defaultBreakerSettings = BreakerSettings{
	MaxRequests:      3,
	Interval:         time.Minute,
	Timeout:          30 * time.Second,
	FailureThreshold: 5,
}

type OpenMeteoRepository struct {
	baseURL    string
	httpClient HTTPClient
	breaker    *gobreaker.CircuitBreaker
	limiter    *rate.Limiter
	metrics    *metrics.DashboardMetrics
	l          *logger.Logger
}

type OpenMeteoOption func(*OpenMeteoRepository)

func WithBaseURL(baseURL string) OpenMeteoOption {
	return func(o *OpenMeteoRepository) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithRateLimit caps outbound requests per second. rps <= 0 disables the limit.
func WithRateLimit(rps float64, burst int) OpenMeteoOption {
	return func(o *OpenMeteoRepository) {
		if rps <= 0 {
			o.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		o.limiter = rate.NewLimiter(rate.Limit(rps), max(burst, 1))
	}
}

func WithBreaker(settings BreakerSettings) OpenMeteoOption {
	return func(o *OpenMeteoRepository) {
		o.breaker = o.newBreaker(settings)
	}
}

func WithMetrics(m *metrics.DashboardMetrics) OpenMeteoOption {
	return func(o *OpenMeteoRepository) {
		o.metrics = m
	}
}

func NewOpenMeteoRepository(l *logger.Logger, httpClient HTTPClient, opts ...OpenMeteoOption) *OpenMeteoRepository {
	o := &OpenMeteoRepository{
		baseURL:    OpenMeteoBaseURL,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Inf, 0),
		l:          l,
	}
	o.breaker = o.newBreaker(defaultBreakerSettings)

	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *OpenMeteoRepository) Name() string {
	return OpenMeteoName
}

func (o *OpenMeteoRepository) newBreaker(s BreakerSettings) *gobreaker.CircuitBreaker {
	threshold := max(s.FailureThreshold, 1)

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        OpenMeteoName,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			o.l.Warning("circuit breaker state changed", map[string]any{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
		},
	})
}

// upstreamReply is a completed exchange the breaker counted as healthy,
// which includes 4xx answers to bad queries.
type upstreamReply struct {
	statusCode int
	status     string
	body       []byte
}

// statusError is a non-2xx answer from the provider.
type statusError struct {
	StatusCode int
	Status     string
	Reason     string
}

func (e *statusError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("HTTP error (status %d): %s", e.StatusCode, e.Status)
}

// FetchDaily performs one GET against the forecast endpoint. Failures are
// returned as plain errors; classifying them is up to the caller.
func (o *OpenMeteoRepository) FetchDaily(ctx context.Context, params models.DailyParams) (models.RawDailyResponse, error) {
	if err := o.limiter.Wait(ctx); err != nil {
		return models.RawDailyResponse{}, errors.Wrap(err, "rate limit wait canceled")
	}

	url := o.baseURL + "?" + params.Values().Encode()

	o.l.Info("making openmeteo API request", map[string]any{
		"latitude":   params.Latitude,
		"longitude":  params.Longitude,
		"start_date": params.StartDate,
		"end_date":   params.EndDate,
	})

	start := time.Now()
	result, err := o.breaker.Execute(func() (interface{}, error) {
		return o.do(ctx, url)
	})
	elapsed := time.Since(start).Seconds()

	if err != nil {
		o.metrics.RecordUpstreamRequest(o.Name(), statusLabel(err), elapsed)
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return models.RawDailyResponse{}, errors.Wrap(err, "open-meteo temporarily unavailable")
		}
		return models.RawDailyResponse{}, err
	}

	reply, ok := result.(*upstreamReply)
	if !ok {
		return models.RawDailyResponse{}, errors.New("unexpected result type from circuit breaker")
	}
	o.metrics.RecordUpstreamRequest(o.Name(), strconv.Itoa(reply.statusCode), elapsed)

	o.l.Info("received openmeteo API response", map[string]any{
		"status":     reply.statusCode,
		"statusText": reply.status,
	})

	if reply.statusCode != http.StatusOK {
		return models.RawDailyResponse{}, clientError(reply)
	}

	var response struct {
		Daily models.RawDailyResponse `json:"daily"`
	}
	if err := json.Unmarshal(reply.body, &response); err != nil {
		return models.RawDailyResponse{}, errors.Wrap(err, "failed to parse JSON response")
	}

	o.l.Debug("parsed API response", map[string]any{
		"days": len(response.Daily.Time),
	})

	return response.Daily, nil
}

// do runs inside the breaker: transport failures, 429 and 5xx count
// against it.
func (o *OpenMeteoRepository) do(ctx context.Context, url string) (*upstreamReply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to do request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	reply := &upstreamReply{statusCode: resp.StatusCode, status: resp.Status, body: body}
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return nil, clientError(reply)
	}
	return reply, nil
}

func clientError(reply *upstreamReply) error {
	serr := &statusError{StatusCode: reply.statusCode, Status: reply.status}

	var apiErr models.OpenMeteoErrorResponse
	if err := json.Unmarshal(reply.body, &apiErr); err == nil && apiErr.Error {
		serr.Reason = apiErr.Reason
	}
	return serr
}

func statusLabel(err error) string {
	var serr *statusError
	switch {
	case errors.As(err, &serr):
		return strconv.Itoa(serr.StatusCode)
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	}
	return "error"
}
