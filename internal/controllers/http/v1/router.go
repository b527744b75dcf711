package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "weather-dashboard/docs"
	"weather-dashboard/internal/services/dashboard"
	"weather-dashboard/pkg/logger"
)

type routes struct {
	service *dashboard.Service
	l       *logger.Logger
}

// NewRouter mounts the API, the Swagger UI and, when gatherer is not nil,
// the Prometheus scrape endpoint.
func NewRouter(
	app *fiber.App,
	service *dashboard.Service,
	gatherer prometheus.Gatherer,
	l *logger.Logger,
) {
	r := &routes{
		service: service,
		l:       l,
	}

	app.Get("/swagger/*", swagger.New(swagger.Config{
		DeepLinking: true,
	}))

	if gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api/v1")
	api.Get("/weather/daily", r.handleDailyWeather)

	dash := api.Group("/dashboard")
	dash.Get("/", r.handleStatus)
	dash.Post("/query", r.handleSubmit)
	dash.Get("/chart", r.handleChart)
	dash.Get("/table", r.handleTable)
	dash.Post("/table/page", r.handleNavigate)
}
