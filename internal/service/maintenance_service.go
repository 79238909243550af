package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"notes-api/internal/repository"
)

// MaintenanceService keeps the SQLite file healthy and reports how notes
// are spread across categories.
type MaintenanceService struct {
	db         *gorm.DB
	categories *repository.CategoryRepository
	log        *zap.Logger
}

func NewMaintenanceService(db *gorm.DB, categories *repository.CategoryRepository, log *zap.Logger) *MaintenanceService {
	return &MaintenanceService{db: db, categories: categories, log: log.Named("maintenance")}
}

// Run optimizes the store and logs a per-category note summary.
func (s *MaintenanceService) Run(ctx context.Context) error {
	if err := repository.Maintain(ctx, s.db); err != nil {
		return err
	}

	counts, err := s.categories.CountNotes(ctx)
	if err != nil {
		return err
	}

	var total int64
	fields := make([]zap.Field, 0, len(counts)+1)
	for _, c := range counts {
		total += c.Notes
		fields = append(fields, zap.Int64(string(c.Type), c.Notes))
	}
	s.log.Info("store maintenance complete", append(fields, zap.Int64("total", total))...)
	return nil
}
