// Package di wires the notes API components with samber/do.
package di

import (
	"github.com/samber/do/v2"
	"go.uber.org/zap"

	"notes-api/internal/api"
	"notes-api/internal/config"
	"notes-api/internal/di/providers"
	"notes-api/internal/metrics"
	"notes-api/internal/repository"
	"notes-api/internal/service"
	"notes-api/internal/validation"
)

// NewContainer creates the DI container for cfg.
func NewContainer(cfg *config.Config) *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.ProvideValue(injector, cfg)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideMetrics)
	do.Provide(injector, providers.ProvideValidator)

	// Storage
	do.Provide(injector, providers.ProvideDatabase)
	do.Provide(injector, providers.ProvideNoteRepository)
	do.Provide(injector, providers.ProvideCategoryRepository)

	// Business services
	do.Provide(injector, providers.ProvideNoteService)
	do.Provide(injector, providers.ProvideCategoryService)
	do.Provide(injector, providers.ProvideMaintenanceService)

	// Workers
	do.Provide(injector, providers.ProvideScheduler)

	// Server
	do.Provide(injector, providers.ProvideAPI)
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap resolves every service so configuration and storage errors
// surface before the server starts listening.
func Bootstrap(injector do.Injector) error {
	for _, invoke := range []func(do.Injector) error{
		invokeAs[*config.Config],
		invokeAs[*zap.Logger],
		invokeAs[*metrics.Metrics],
		invokeAs[*validation.Validator],
		invokeAs[*providers.DatabaseHandle],
		invokeAs[*repository.NoteRepository],
		invokeAs[*repository.CategoryRepository],
		invokeAs[*service.NoteService],
		invokeAs[*service.CategoryService],
		invokeAs[*service.MaintenanceService],
		invokeAs[*providers.SchedulerHandle],
		invokeAs[*api.Server],
		invokeAs[*providers.HTTPServerHandle],
	} {
		if err := invoke(injector); err != nil {
			return err
		}
	}
	return nil
}

func invokeAs[T any](i do.Injector) error {
	_, err := do.Invoke[T](i)
	return err
}
