package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"notes-api/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "notes.db"), Options{}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestNewDB_SeedsCategoriesOnce(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// A second migration must not duplicate the lookup rows.
	require.NoError(t, Migrate(ctx, db))

	categories, err := NewCategoryRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, len(model.CategoryTypes))
	for i, c := range categories {
		assert.Equal(t, uint(i+1), c.ID)
		assert.Equal(t, model.CategoryTypes[i], c.Type)
	}
}

func TestNewDB_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "notes.db")
	db, err := NewDB(path, Options{MaxOpenConns: 2}, nil)
	require.NoError(t, err)
	defer Close(db)

	assert.FileExists(t, path)
	assert.NoError(t, Ping(context.Background(), db))
}

func TestNewDB_EnforcesForeignKeys(t *testing.T) {
	db := newTestDB(t)

	err := NewNoteRepository(db).Create(context.Background(), &model.Note{
		Title:      "orphan",
		Priority:   1,
		CategoryID: 999,
	})
	assert.Error(t, err)
}

func TestMaintain(t *testing.T) {
	db := newTestDB(t)
	assert.NoError(t, Maintain(context.Background(), db))
}

func TestWithSQLiteDefaults(t *testing.T) {
	assert.Equal(t,
		"notes.db?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL",
		withSQLiteDefaults("notes.db"))
	assert.Equal(t,
		"file:notes.db?cache=shared&_busy_timeout=100&_foreign_keys=on&_journal_mode=WAL",
		withSQLiteDefaults("file:notes.db?cache=shared&_busy_timeout=100"))
}
