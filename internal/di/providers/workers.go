package providers

import (
	"time"

	"github.com/samber/do/v2"
	"go.uber.org/zap"

	"notes-api/internal/config"
	"notes-api/internal/service"
)

const maintenanceJob = "store-maintenance"

// SchedulerHandle wraps the scheduler with shutdown capability.
type SchedulerHandle struct {
	*service.SchedulerService
}

// Shutdown implements do.Shutdownable.
func (h *SchedulerHandle) Shutdown() error {
	h.Stop()
	return nil
}

// ProvideScheduler registers the maintenance job and starts the scheduler.
// DailyAt wins over Interval when both are set.
func ProvideScheduler(i do.Injector) (*SchedulerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*zap.Logger](i)
	maintenance := do.MustInvoke[*service.MaintenanceService](i)

	scheduler := service.NewSchedulerService(time.Local, cfg.Maintenance.Timeout, log)

	switch {
	case cfg.Maintenance.DailyAt != "":
		if _, err := scheduler.ScheduleDaily(maintenanceJob, cfg.Maintenance.DailyAt, maintenance.Run); err != nil {
			return nil, err
		}
		log.Info("maintenance scheduled", zap.String("daily_at", cfg.Maintenance.DailyAt))
	case cfg.Maintenance.Interval > 0:
		if _, err := scheduler.ScheduleInterval(maintenanceJob, cfg.Maintenance.Interval, maintenance.Run); err != nil {
			return nil, err
		}
		log.Info("maintenance scheduled", zap.Duration("interval", cfg.Maintenance.Interval))
	default:
		log.Info("maintenance disabled")
	}

	scheduler.Start()
	return &SchedulerHandle{SchedulerService: scheduler}, nil
}
