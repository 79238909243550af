package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"notes-api/internal/logger"
	"notes-api/internal/model"
)

// ErrNotFound is returned when an id-keyed lookup matches no row.
var ErrNotFound = errors.New("record not found")

// Options tunes the SQLite connection.
type Options struct {
	MaxOpenConns  int
	SlowThreshold time.Duration
}

// NewDB opens a SQLite database, creates the schema and seeds categories.
func NewDB(dsn string, opts Options, log *zap.Logger) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "database.db"
	}
	if log == nil {
		log = zap.NewNop()
	}

	if err := ensureDirForSQLite(dsn); err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(withSQLiteDefaults(dsn)), &gorm.Config{
		Logger: logger.NewGormLogger(log, opts.SlowThreshold),
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}

	if err := Migrate(context.Background(), db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates missing tables and seeds one category per type. Safe to
// run on every startup.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.Category{}, &model.Note{}); err != nil {
		return fmt.Errorf("migrate db: %w", err)
	}

	categories := make([]model.Category, 0, len(model.CategoryTypes))
	for _, t := range model.CategoryTypes {
		categories = append(categories, model.Category{Type: t})
	}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "type"}}, DoNothing: true}).
		Create(&categories).Error
	if err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the database answers.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Maintain runs SQLite housekeeping: planner statistics and a WAL checkpoint.
func Maintain(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Exec("PRAGMA optimize").Error; err != nil {
		return fmt.Errorf("optimize: %w", err)
	}
	if err := db.WithContext(ctx).Exec("PRAGMA wal_checkpoint(TRUNCATE)").Error; err != nil {
		return fmt.Errorf("wal checkpoint: %w", err)
	}
	return nil
}

// withSQLiteDefaults turns on foreign keys, WAL and a busy timeout unless
// the DSN already sets them.
func withSQLiteDefaults(dsn string) string {
	params := []struct{ key, value string }{
		{"_foreign_keys", "on"},
		{"_busy_timeout", "5000"},
		{"_journal_mode", "WAL"},
	}
	for _, p := range params {
		if strings.Contains(dsn, p.key+"=") {
			continue
		}
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + p.key + "=" + p.value
	}
	return dsn
}

// ensureDirForSQLite creates parent dir for SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
