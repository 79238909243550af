package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	domainerrors "notes-api/internal/errors"
	"notes-api/internal/repository"
	"notes-api/internal/validation"
)

type testEnv struct {
	db         *gorm.DB
	notes      *NoteService
	categories *CategoryService
}

func newTestEnv(t testing.TB) *testEnv {
	t.Helper()

	db, err := repository.NewDB(filepath.Join(t.TempDir(), "notes.db"), repository.Options{}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repository.Close(db) })

	v := validation.New()
	noteRepo := repository.NewNoteRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	return &testEnv{
		db:         db,
		notes:      NewNoteService(noteRepo, categoryRepo, v, zap.NewNop()),
		categories: NewCategoryService(categoryRepo, noteRepo, v),
	}
}

// fixedClock makes the note service return the times from ticks, then keep
// returning the last one.
func (e *testEnv) fixedClock(ticks ...time.Time) {
	i := 0
	e.notes.now = func() time.Time {
		t := ticks[i]
		if i < len(ticks)-1 {
			i++
		}
		return t
	}
}

func validationFields(t testing.TB, err error) map[string]string {
	t.Helper()
	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, domainerrors.CodeValidation, domainErr.Code)
	fields, ok := domainErr.Details.([]domainerrors.FieldError)
	require.True(t, ok)
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f.Field] = f.Message
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
