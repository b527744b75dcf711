package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/services/dashboard"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error  string                 `json:"error" example:"No data available for the selected inputs."`
	Fields []dashboard.FieldError `json:"fields,omitempty"`
}

// DashboardResponse is one result set: its chart and one table page.
type DashboardResponse struct {
	Generation uint64            `json:"generation,omitempty" example:"3"`
	Query      models.Query      `json:"query"`
	Chart      models.ChartModel `json:"chart"`
	Table      dashboard.Page    `json:"table"`
}

func newDashboardResponse(res dashboard.Result) DashboardResponse {
	return DashboardResponse{
		Generation: res.Generation,
		Query:      res.Query,
		Chart:      res.Chart,
		Table:      res.Page(),
	}
}

// GetDailyWeather godoc
// @Summary Get daily temperatures
// @Description Runs one query against Open-Meteo and returns the chart and one table page. Nothing is installed on the dashboard.
// @Tags Weather
// @Produce json
// @Param latitude query number true "Latitude (-90 to 90)" example(52.52)
// @Param longitude query number true "Longitude (-180 to 180)" example(13.41)
// @Param start_date query string true "First day, YYYY-MM-DD" example(2024-01-01)
// @Param end_date query string true "Last day, YYYY-MM-DD" example(2024-01-14)
// @Param page query integer false "Zero-based page index, clamped into range" example(0)
// @Param page_size query integer false "Rows per page: 10, 20 or 50" example(10)
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse "Invalid query or page size"
// @Failure 404 {object} ErrorResponse "No data for the query"
// @Failure 502 {object} ErrorResponse "Provider failure"
// @Router /api/v1/weather/daily [get]
//
//	curl "http://localhost:8080/api/v1/weather/daily?latitude=52.52&longitude=13.41&start_date=2024-01-01&end_date=2024-01-14"
func (r *routes) handleDailyWeather(c *fiber.Ctx) error {
	q := models.Query{
		Latitude:  c.Query("latitude"),
		Longitude: c.Query("longitude"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	if err := dashboard.ValidateQuery(q); err != nil {
		return r.fail(c, err)
	}

	page, err := intQuery(c, "page", 0)
	if err != nil {
		return r.fail(c, err)
	}
	size, err := intQuery(c, "page_size", 0)
	if err != nil {
		return r.fail(c, err)
	}
	if size != 0 && !dashboard.ValidPageSize(size) {
		return r.fail(c, dashboard.ErrInvalidPageSize)
	}

	res, err := r.service.Run(c.UserContext(), q)
	if err != nil {
		return r.fail(c, err)
	}

	if size != 0 {
		if res.State, err = res.State.SetPageSize(size); err != nil {
			return r.fail(c, err)
		}
	}
	res.State = res.State.GotoPage(page)

	return c.JSON(newDashboardResponse(res))
}

// GetDashboard godoc
// @Summary Get dashboard status
// @Description Reports whether a submission is loading, the last error and the installed result.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dashboard.Status
// @Router /api/v1/dashboard [get]
func (r *routes) handleStatus(c *fiber.Ctx) error {
	return c.JSON(r.service.Status())
}

// SubmitQuery godoc
// @Summary Submit a dashboard query
// @Description Fetches and installs a new result set. The dashboard is empty while the query runs and stays empty if it fails.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param query body models.Query true "Location and date range"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 404 {object} ErrorResponse "No data for the query"
// @Failure 409 {object} ErrorResponse "Superseded by a newer submission"
// @Failure 502 {object} ErrorResponse "Provider failure"
// @Router /api/v1/dashboard/query [post]
func (r *routes) handleSubmit(c *fiber.Ctx) error {
	var q models.Query
	if err := c.BodyParser(&q); err != nil {
		return r.fail(c, fiber.NewError(fiber.StatusBadRequest, "invalid request body"))
	}
	if err := dashboard.ValidateQuery(q); err != nil {
		return r.fail(c, err)
	}

	res, err := r.service.Submit(c.UserContext(), q)
	if err != nil {
		return r.fail(c, err)
	}
	return c.JSON(newDashboardResponse(res))
}

// GetChart godoc
// @Summary Get the installed chart
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.ChartModel
// @Failure 404 {object} ErrorResponse "Nothing installed"
// @Router /api/v1/dashboard/chart [get]
func (r *routes) handleChart(c *fiber.Ctx) error {
	chart, err := r.service.Chart()
	if err != nil {
		return r.fail(c, err)
	}
	return c.JSON(chart)
}

// GetTable godoc
// @Summary Get the current table page
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dashboard.Page
// @Failure 404 {object} ErrorResponse "Nothing installed"
// @Router /api/v1/dashboard/table [get]
func (r *routes) handleTable(c *fiber.Ctx) error {
	page, err := r.service.Table()
	if err != nil {
		return r.fail(c, err)
	}
	return c.JSON(page)
}

// NavigateTable godoc
// @Summary Change the table page
// @Description Applies one of first, previous, next, last, goto (page), size (page_size) or date (date).
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param action body dashboard.PageAction true "Navigation action"
// @Success 200 {object} dashboard.Page
// @Failure 400 {object} ErrorResponse "Unknown action or page size"
// @Failure 404 {object} ErrorResponse "Nothing installed or date not found"
// @Router /api/v1/dashboard/table/page [post]
func (r *routes) handleNavigate(c *fiber.Ctx) error {
	var action dashboard.PageAction
	if err := c.BodyParser(&action); err != nil {
		return r.fail(c, fiber.NewError(fiber.StatusBadRequest, "invalid request body"))
	}

	page, err := r.service.Navigate(action)
	if err != nil {
		return r.fail(c, err)
	}
	return c.JSON(page)
}

func (r *routes) fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	resp := ErrorResponse{Error: err.Error()}

	var verr *dashboard.ValidationError
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields
	}

	if status >= fiber.StatusInternalServerError {
		r.l.Warning("request failed", map[string]any{
			"path":   c.Path(),
			"status": status,
			"error":  err.Error(),
		})
	}

	return c.Status(status).JSON(resp)
}

func statusFor(err error) int {
	var (
		fe         *fiber.Error
		validation *dashboard.ValidationError
		noData     *dashboard.NoDataError
		misaligned *dashboard.MisalignedDataError
		transport  *dashboard.TransportError
	)
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.As(err, &validation),
		errors.Is(err, dashboard.ErrInvalidPageSize),
		errors.Is(err, dashboard.ErrUnknownAction):
		return fiber.StatusBadRequest
	case errors.As(err, &noData),
		errors.Is(err, dashboard.ErrNoResult),
		errors.Is(err, dashboard.ErrDateNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, dashboard.ErrStaleResult):
		return fiber.StatusConflict
	case errors.As(err, &misaligned), errors.As(err, &transport):
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}

func intQuery(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, key+" must be an integer")
	}
	return v, nil
}
