package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "config/config.yaml"

type Config struct {
	App       AppConfig       `yaml:"app"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	OpenMeteo OpenMeteoConfig `yaml:"open_meteo" envconfig:"OPEN_METEO"`
	Sentry    SentryConfig    `yaml:"sentry"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"NAME"`
	Version string `yaml:"version" envconfig:"VERSION"`
	Env     string `yaml:"env" envconfig:"ENV"`
}

// ServerConfig timeouts are in seconds.
type ServerConfig struct {
	Port            string `yaml:"port" envconfig:"PORT"`
	ReadTimeout     int    `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    int    `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     int    `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout int    `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

type LogConfig struct {
	Level string `yaml:"level" envconfig:"LEVEL"`
}

// OpenMeteoConfig configures the forecast provider client. Timeout and the
// breaker windows are in seconds; RateLimit is requests per second, 0 means
// unlimited.
type OpenMeteoConfig struct {
	BaseURL                 string  `yaml:"base_url" envconfig:"BASE_URL"`
	Timeout                 int     `yaml:"timeout" envconfig:"TIMEOUT"`
	RateLimit               float64 `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
	Burst                   int     `yaml:"burst" envconfig:"BURST"`
	BreakerMaxRequests      uint32  `yaml:"breaker_max_requests" envconfig:"BREAKER_MAX_REQUESTS"`
	BreakerInterval         int     `yaml:"breaker_interval" envconfig:"BREAKER_INTERVAL"`
	BreakerTimeout          int     `yaml:"breaker_timeout" envconfig:"BREAKER_TIMEOUT"`
	BreakerFailureThreshold uint32  `yaml:"breaker_failure_threshold" envconfig:"BREAKER_FAILURE_THRESHOLD"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn" envconfig:"DSN"`
	Debug bool   `yaml:"debug" envconfig:"DEBUG"`
}

type DashboardConfig struct {
	DefaultPageSize int `yaml:"default_page_size" envconfig:"DEFAULT_PAGE_SIZE"`
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider layers defaults, an optional YAML file and the
// environment, in that order.
type FileConfigProvider struct {
	path string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:    "weather-dashboard",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:            "8080",
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     120,
			ShutdownTimeout: 30,
		},
		Log: LogConfig{Level: "info"},
		OpenMeteo: OpenMeteoConfig{
			BaseURL:                 "https://api.open-meteo.com/v1/forecast",
			Timeout:                 15,
			RateLimit:               5,
			Burst:                   5,
			BreakerMaxRequests:      3,
			BreakerInterval:         60,
			BreakerTimeout:          30,
			BreakerFailureThreshold: 5,
		},
		Dashboard: DashboardConfig{DefaultPageSize: 10},
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := Default()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cnf, nil
}

// loadFromFile overlays the YAML file onto cnf. A missing file is not an error.
func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	data, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(data, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config %s: %w", p.path, err)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "dpanic": true, "panic": true, "fatal": true,
}

var validPageSizes = map[int]bool{10: true, 20: true, 50: true}

func (p *FileConfigProvider) Validate(cnf *Config) error {
	var problems []string

	if cnf.App.Name == "" {
		problems = append(problems, "app.name is required")
	}
	if cnf.Server.Port == "" {
		problems = append(problems, "server.port is required")
	}
	if cnf.Server.ReadTimeout <= 0 || cnf.Server.WriteTimeout <= 0 || cnf.Server.IdleTimeout <= 0 {
		problems = append(problems, "server timeouts must be positive")
	}
	if !validLogLevels[strings.ToLower(cnf.Log.Level)] {
		problems = append(problems, fmt.Sprintf("log.level %q is not a valid level", cnf.Log.Level))
	}
	if u, err := url.Parse(cnf.OpenMeteo.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, "open_meteo.base_url must be an absolute URL")
	}
	if cnf.OpenMeteo.Timeout <= 0 {
		problems = append(problems, "open_meteo.timeout must be positive")
	}
	if cnf.OpenMeteo.RateLimit < 0 {
		problems = append(problems, "open_meteo.rate_limit must not be negative")
	}
	if cnf.OpenMeteo.RateLimit > 0 && cnf.OpenMeteo.Burst < 1 {
		problems = append(problems, "open_meteo.burst must be at least 1 when rate limiting")
	}
	if !validPageSizes[cnf.Dashboard.DefaultPageSize] {
		problems = append(problems, "dashboard.default_page_size must be one of 10, 20, 50")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// NewConfig loads an optional .env file, then the default config file and the environment.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()
	return NewConfigWithProvider(NewFileConfigProvider(DefaultConfigPath))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}
	if err := provider.Validate(cnf); err != nil {
		return nil, err
	}
	return cnf, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (s ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

func (s ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

func (s ServerConfig) IdleTimeoutDuration() time.Duration {
	return time.Duration(s.IdleTimeout) * time.Second
}

func (s ServerConfig) ShutdownTimeoutDuration() time.Duration {
	if s.ShutdownTimeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(s.ShutdownTimeout) * time.Second
}

func (o OpenMeteoConfig) TimeoutDuration() time.Duration {
	return time.Duration(o.Timeout) * time.Second
}
