package httpserver

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"weather-dashboard/config"
	"weather-dashboard/pkg/logger"
)

const (
	HealthEndpoint = "/manage/health"
	ReadyEndpoint  = "/manage/ready"
	bodyLimit      = 1024 * 1024
)

// InitFiberServer builds the application with the shared middleware stack:
// panic recovery, request ids, access logging, CORS and health probes.
func InitFiberServer(appName string, srv config.ServerConfig, l *logger.Logger) *fiber.App {
	s := fiber.New(fiber.Config{
		AppName:      appName,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		BodyLimit:    bodyLimit,
		ReadTimeout:  srv.ReadTimeoutDuration(),
		WriteTimeout: srv.WriteTimeoutDuration(),
		IdleTimeout:  srv.IdleTimeoutDuration(),
	})

	s.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	s.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	s.Use(accessLog(l))
	s.Use(cors.New())
	s.Use(healthcheck.New(healthcheck.Config{
		LivenessEndpoint:  HealthEndpoint,
		ReadinessEndpoint: ReadyEndpoint,
	}))

	return s
}

func accessLog(l *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}

		l.Debug("http request", map[string]any{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"request_id": c.GetRespHeader(fiber.HeaderXRequestID),
			"duration":   time.Since(start).String(),
		})
		return err
	}
}
