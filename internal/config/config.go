package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config keeps runtime settings for the API server.
type Config struct {
	App         AppConfig         `yaml:"app"`
	Log         LogConfig         `yaml:"log"`
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Maintenance MaintenanceConfig `yaml:"maintenance"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or console, empty picks by environment
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
}

type DatabaseConfig struct {
	URL           string        `yaml:"url"`
	MaxOpenConns  int           `yaml:"max_open_conns"`
	SlowThreshold time.Duration `yaml:"slow_threshold"`
}

type MaintenanceConfig struct {
	// Interval between store maintenance runs, 0 disables the job.
	Interval time.Duration `yaml:"interval"`
	// DailyAt ("HH:MM") runs maintenance once a day instead of on Interval.
	DailyAt  string        `yaml:"daily_at"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Default returns the configuration used when nothing else is provided.
func Default() Config {
	return Config{
		App: AppConfig{
			Name:        "Notes Management API",
			Environment: "development",
		},
		Log: LogConfig{Level: "info"},
		Server: ServerConfig{
			Addr:            ":8000",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
		Database: DatabaseConfig{
			URL:           "database.db",
			MaxOpenConns:  4,
			SlowThreshold: time.Second,
		},
		Maintenance: MaintenanceConfig{Interval: 6 * time.Hour, Timeout: 30 * time.Second},
	}
}

// Load reads configuration from defaults, then the optional YAML file at
// path, then environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %q: %w", path, err)
		}
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	if v := env("APP_ENV"); v != "" {
		cfg.App.Environment = v
	}
	if v := env("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := env("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := env("HTTP_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := env("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := env("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.Server.AllowedOrigins = splitList(v)
	}
	if v := env("MAINTENANCE_INTERVAL"); v != "" {
		interval, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("MAINTENANCE_INTERVAL: %w", err)
		}
		cfg.Maintenance.Interval = interval
	}
	if v := env("MAINTENANCE_DAILY_AT"); v != "" {
		cfg.Maintenance.DailyAt = v
	}
	return nil
}

// Validate checks that the loaded values are usable.
func (c Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Database.URL == "" {
		errs = append(errs, errors.New("database.url is required"))
	}
	if c.Database.MaxOpenConns < 1 {
		errs = append(errs, errors.New("database.max_open_conns must be at least 1"))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must be positive"))
	}
	if c.Maintenance.Interval < 0 {
		errs = append(errs, errors.New("maintenance.interval must not be negative"))
	}
	if c.Maintenance.Timeout <= 0 {
		errs = append(errs, errors.New("maintenance.timeout must be positive"))
	}
	switch c.Log.Format {
	case "", "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format %q is not json or console", c.Log.Format))
	}
	return errors.Join(errs...)
}

// IsProduction reports whether the app runs in the production environment.
func (c Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
