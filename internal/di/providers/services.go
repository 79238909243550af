package providers

import (
	"github.com/samber/do/v2"
	"go.uber.org/zap"

	"notes-api/internal/repository"
	"notes-api/internal/service"
	"notes-api/internal/validation"
)

func ProvideNoteService(i do.Injector) (*service.NoteService, error) {
	return service.NewNoteService(
		do.MustInvoke[*repository.NoteRepository](i),
		do.MustInvoke[*repository.CategoryRepository](i),
		do.MustInvoke[*validation.Validator](i),
		do.MustInvoke[*zap.Logger](i),
	), nil
}

func ProvideCategoryService(i do.Injector) (*service.CategoryService, error) {
	return service.NewCategoryService(
		do.MustInvoke[*repository.CategoryRepository](i),
		do.MustInvoke[*repository.NoteRepository](i),
		do.MustInvoke[*validation.Validator](i),
	), nil
}

func ProvideMaintenanceService(i do.Injector) (*service.MaintenanceService, error) {
	db := do.MustInvoke[*DatabaseHandle](i)
	return service.NewMaintenanceService(
		db.DB,
		do.MustInvoke[*repository.CategoryRepository](i),
		do.MustInvoke[*zap.Logger](i),
	), nil
}
