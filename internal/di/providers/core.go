// Package providers contains dependency injection providers for the notes API.
package providers

import (
	"github.com/samber/do/v2"
	"go.uber.org/zap"

	"notes-api/internal/config"
	"notes-api/internal/logger"
	"notes-api/internal/metrics"
	"notes-api/internal/validation"
)

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*zap.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Environment: cfg.App.Environment,
	})
	if err != nil {
		return nil, err
	}

	log.Info("starting notes API",
		zap.String("environment", cfg.App.Environment),
		zap.Bool("production", cfg.IsProduction()),
		zap.String("log_level", cfg.Log.Level),
		zap.String("database", cfg.Database.URL),
	)
	return log, nil
}

// ProvideMetrics provides the Prometheus instruments.
func ProvideMetrics(i do.Injector) (*metrics.Metrics, error) {
	return metrics.New(), nil
}

// ProvideValidator provides the request validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}
