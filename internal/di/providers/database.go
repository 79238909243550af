package providers

import (
	"github.com/samber/do/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"notes-api/internal/config"
	"notes-api/internal/repository"
)

// DatabaseHandle wraps the GORM handle with shutdown capability.
type DatabaseHandle struct {
	*gorm.DB
}

// Shutdown implements do.Shutdownable.
func (h *DatabaseHandle) Shutdown() error {
	return repository.Close(h.DB)
}

// ProvideDatabase opens the SQLite store, migrating and seeding it.
func ProvideDatabase(i do.Injector) (*DatabaseHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*zap.Logger](i)

	db, err := repository.NewDB(cfg.Database.URL, repository.Options{
		MaxOpenConns:  cfg.Database.MaxOpenConns,
		SlowThreshold: cfg.Database.SlowThreshold,
	}, log)
	if err != nil {
		return nil, err
	}

	log.Info("database initialized", zap.String("url", cfg.Database.URL))
	return &DatabaseHandle{DB: db}, nil
}

func ProvideNoteRepository(i do.Injector) (*repository.NoteRepository, error) {
	db := do.MustInvoke[*DatabaseHandle](i)
	return repository.NewNoteRepository(db.DB), nil
}

func ProvideCategoryRepository(i do.Injector) (*repository.CategoryRepository, error) {
	db := do.MustInvoke[*DatabaseHandle](i)
	return repository.NewCategoryRepository(db.DB), nil
}
