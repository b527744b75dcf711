package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/logger"
	"weather-dashboard/pkg/metrics"
)

// DailyFetcher is the provider collaborator performing the network call.
type DailyFetcher interface {
	Name() string
	FetchDaily(ctx context.Context, params models.DailyParams) (models.RawDailyResponse, error)
}

// Result is one installed result set. Chart and Rows are never modified
// after the pipeline builds them; consumers must not modify them either.
type Result struct {
	Generation  uint64            `json:"generation" example:"3"`
	Query       models.Query      `json:"query"`
	Chart       models.ChartModel `json:"chart"`
	Rows        []models.Row      `json:"-"`
	State       PageState         `json:"state"`
	InstalledAt time.Time         `json:"installed_at"`
}

// Page returns the current page of the result.
func (r Result) Page() Page {
	return NewPage(r.Rows, r.State)
}

// Status describes the dashboard as a whole, mirroring what a user sees:
// a loading indicator, an error message, or a result.
type Status struct {
	Generation uint64  `json:"generation"`
	Loading    bool    `json:"loading"`
	Error      string  `json:"error,omitempty"`
	Result     *Result `json:"result,omitempty"`
}

type Option func(*Service)

func WithMetrics(m *metrics.DashboardMetrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithDefaultPageSize sets the page size installed with each new result.
func WithDefaultPageSize(size int) Option {
	return func(s *Service) {
		if ValidPageSize(size) {
			s.defaultPageSize = size
		}
	}
}

// Service runs submissions through the pipeline and owns the installed
// result. Submissions are numbered; a completion is installed only when no
// newer submission has been started since, so a slow stale response can
// never replace a newer one.
type Service struct {
	fetcher         DailyFetcher
	l               *logger.Logger
	metrics         *metrics.DashboardMetrics
	defaultPageSize int

	mu         sync.RWMutex
	generation uint64
	inFlight   map[uint64]struct{}
	current    *Result
	lastErr    string
}

func NewService(fetcher DailyFetcher, l *logger.Logger, opts ...Option) *Service {
	s := &Service{
		fetcher:         fetcher,
		l:               l,
		defaultPageSize: DefaultPageSize,
		inFlight:        make(map[uint64]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the pipeline for q without touching the installed result.
func (s *Service) Run(ctx context.Context, q models.Query) (Result, error) {
	chart, rows, err := s.runPipeline(ctx, q)
	s.metrics.RecordRun(outcomeFor(err))
	if err != nil {
		return Result{}, err
	}
	return Result{
		Query:       q,
		Chart:       chart,
		Rows:        rows,
		State:       NewPageStateWithSize(len(rows), s.defaultPageSize),
		InstalledAt: time.Now().UTC(),
	}, nil
}

// Submit runs q and installs its result. The dashboard is emptied when the
// submission starts and stays empty if it fails. ErrStaleResult is returned
// when a newer submission was started before this one completed.
func (s *Service) Submit(ctx context.Context, q models.Query) (Result, error) {
	gen := s.begin()

	s.l.Info("dashboard submission started", map[string]any{
		"generation": gen,
		"query":      q.RequestParams(),
	})

	chart, rows, err := s.runPipeline(ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, gen)

	if gen != s.generation {
		s.metrics.RecordSubmission(metrics.OutcomeStale)
		s.l.Warning("discarding stale submission", map[string]any{
			"generation": gen,
			"latest":     s.generation,
		})
		return Result{}, ErrStaleResult
	}

	s.metrics.RecordSubmission(outcomeFor(err))
	if err != nil {
		s.lastErr = err.Error()
		s.metrics.SetInstalledRows(0)
		return Result{}, err
	}

	s.current = &Result{
		Generation:  gen,
		Query:       q,
		Chart:       chart,
		Rows:        rows,
		State:       NewPageStateWithSize(len(rows), s.defaultPageSize),
		InstalledAt: time.Now().UTC(),
	}
	s.metrics.SetInstalledRows(len(rows))

	s.l.Info("dashboard result installed", map[string]any{
		"generation": gen,
		"rows":       len(rows),
	})

	return *s.current, nil
}

func (s *Service) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.inFlight[s.generation] = struct{}{}
	s.current = nil
	s.lastErr = ""
	s.metrics.SetGeneration(s.generation)
	s.metrics.SetInstalledRows(0)

	return s.generation
}

func (s *Service) runPipeline(ctx context.Context, q models.Query) (models.ChartModel, []models.Row, error) {
	start := time.Now()
	params := Normalize(q)

	s.l.Debug("fetching daily observations", map[string]any{
		"provider": s.fetcher.Name(),
		"params":   params,
	})

	raw, fetchErr := s.fetcher.FetchDaily(ctx, params)
	raw, err := ValidateResponse(raw, fetchErr)
	if err != nil {
		s.logFailure(q, err)
		return models.ChartModel{}, nil, err
	}

	chart := BuildChart(raw)
	rows := ProjectRows(raw)

	s.l.Debug("pipeline completed", map[string]any{
		"days":     len(rows),
		"series":   len(chart.Series),
		"duration": time.Since(start).String(),
	})

	return chart, rows, nil
}

func (s *Service) logFailure(q models.Query, err error) {
	fields := map[string]any{
		"provider": s.fetcher.Name(),
		"query":    q.RequestParams(),
	}

	var noData *NoDataError
	if errors.As(err, &noData) {
		s.l.Warning("provider returned no data", fields)
		return
	}
	s.l.Error(err, fields)
}

// Status reports the dashboard state.
func (s *Service) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Status{
		Generation: s.generation,
		Loading:    len(s.inFlight) > 0,
		Error:      s.lastErr,
	}
	if s.current != nil {
		res := *s.current
		st.Result = &res
	}
	return st
}

// Current returns the installed result or ErrNoResult.
func (s *Service) Current() (Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return Result{}, ErrNoResult
	}
	return *s.current, nil
}

// Chart returns the chart of the installed result.
func (s *Service) Chart() (models.ChartModel, error) {
	res, err := s.Current()
	if err != nil {
		return models.ChartModel{}, err
	}
	return res.Chart, nil
}

// Table returns the current page of the installed result.
func (s *Service) Table() (Page, error) {
	res, err := s.Current()
	if err != nil {
		return Page{}, err
	}
	return res.Page(), nil
}

// Navigate applies a page action to the installed result.
func (s *Service) Navigate(action PageAction) (Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return Page{}, ErrNoResult
	}

	next, err := ApplyAction(s.current.State, s.current.Rows, action)
	if err != nil {
		return Page{}, err
	}

	s.current.State = next
	s.l.Debug("page changed", map[string]any{
		"action":     action.Type,
		"page_index": next.PageIndex,
		"page_size":  next.PageSize,
	})

	return NewPage(s.current.Rows, next), nil
}

// ApplyAction is Reduce plus ActionDate, which jumps to the page holding
// the row of the given date.
func ApplyAction(state PageState, rows []models.Row, action PageAction) (PageState, error) {
	if action.Type != ActionDate {
		return Reduce(state, action)
	}

	idx := models.FilterByDate(rows, action.Date)
	if idx < 0 {
		return state, ErrDateNotFound
	}
	return state.GotoPage(idx / state.PageSize), nil
}

func outcomeFor(err error) string {
	var (
		noData     *NoDataError
		misaligned *MisalignedDataError
	)
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.As(err, &noData):
		return metrics.OutcomeNoData
	case errors.As(err, &misaligned):
		return metrics.OutcomeMisaligned
	}
	return metrics.OutcomeTransport
}
