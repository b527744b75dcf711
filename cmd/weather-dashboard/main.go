package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"weather-dashboard/config"
	v1 "weather-dashboard/internal/controllers/http/v1"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/services/dashboard"
	"weather-dashboard/pkg/httpserver"
	"weather-dashboard/pkg/logger"
	"weather-dashboard/pkg/metrics"
	"weather-dashboard/pkg/observe"
)

// @title Weather Dashboard API
// @version 1.0.0
// @description Daily temperature charts and paginated tables for a location and date range, backed by Open-Meteo.

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description Stateless daily weather queries
// @tag.name Dashboard
// @tag.description The installed result set and its table navigation
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load configuration:", err)
		os.Exit(1)
	}

	writers := []io.Writer{os.Stdout}

	var hook *observe.SentryHook
	if cnf.Sentry.DSN != "" {
		hook, err = observe.NewSentryHook(observe.SentryOptions{
			DSN:     cnf.Sentry.DSN,
			AppZone: cnf.App.Env,
			AppName: cnf.App.Name,
			Debug:   cnf.Sentry.Debug,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "cannot init sentry:", err)
			os.Exit(1)
		}
		writers = append(writers, hook)
	}

	logOpts := logger.Options{
		AppName: cnf.App.Name,
		AppEnv:  cnf.App.Env,
		Level:   cnf.Log.Level,
	}
	l := logger.NewZapLogger(logOpts, writers...)
	if hook != nil {
		// hook failures must not be written back into the hook
		hook.SetLogger(logger.NewZapLogger(logOpts, os.Stdout))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m, err := metrics.NewDashboardMetrics(registry)
	if err != nil {
		l.Fatal("cannot register metrics", map[string]any{"err": err.Error()})
	}

	app := httpserver.InitFiberServer(cnf.App.Name, cnf.Server, l)

	repo := repositories.InitDailyRepository(cnf, l, m)

	service := dashboard.NewService(
		repo,
		l,
		dashboard.WithMetrics(m),
		dashboard.WithDefaultPageSize(cnf.Dashboard.DefaultPageSize),
	)

	v1.NewRouter(
		app,
		service,
		registry,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err.Error()})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":     cnf.Server.Port,
		"provider": repo.Name(),
		"env":      cnf.App.Env,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cnf.Server.ShutdownTimeoutDuration())
		defer shutdownCancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			l.Error(err, map[string]any{"stage": "shutdown"})
		}
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case sig := <-sigCh:
		l.Info("received shutdown signal", map[string]any{"signal": sig.String()})
	case <-ctx.Done():
		l.Info("context cancelled")
	}
}
