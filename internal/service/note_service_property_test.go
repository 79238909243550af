package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	domainerrors "notes-api/internal/errors"
	"notes-api/internal/model"
	"notes-api/internal/patch"
)

func genNoteCreate() *rapid.Generator[NoteCreate] {
	return rapid.Custom(func(t *rapid.T) NoteCreate {
		in := NoteCreate{
			Title:      rapid.StringMatching(`[a-zA-Z0-9 ]{1,100}`).Draw(t, "title"),
			CategoryID: rapid.UintRange(1, uint(len(model.CategoryTypes))).Draw(t, "category_id"),
		}
		if rapid.Bool().Draw(t, "has_description") {
			d := rapid.StringMatching(`[a-z ]{0,200}`).Draw(t, "description")
			in.Description = &d
		}
		if rapid.Bool().Draw(t, "has_priority") {
			p := rapid.IntRange(model.PriorityMin, model.PriorityMax).Draw(t, "priority")
			in.Priority = &p
		}
		return in
	})
}

func genNoteUpdate() *rapid.Generator[NoteUpdate] {
	return rapid.Custom(func(t *rapid.T) NoteUpdate {
		var u NoteUpdate
		if rapid.Bool().Draw(t, "set_title") {
			u.Title = patch.Of(rapid.StringMatching(`[a-z]{1,100}`).Draw(t, "title"))
		}
		switch rapid.IntRange(0, 2).Draw(t, "description_state") {
		case 1:
			u.Description = patch.Null[string]()
		case 2:
			u.Description = patch.Of(rapid.StringMatching(`[a-z ]{0,50}`).Draw(t, "description"))
		}
		if rapid.Bool().Draw(t, "set_priority") {
			u.Priority = patch.Of(rapid.IntRange(model.PriorityMin, model.PriorityMax).Draw(t, "priority"))
		}
		if rapid.Bool().Draw(t, "set_category") {
			u.CategoryID = patch.Of(rapid.UintRange(1, uint(len(model.CategoryTypes))).Draw(t, "category_id"))
		}
		return u
	})
}

// Created notes read back unchanged and never carry a caller-chosen time.
func TestNoteService_CreateThenGetProperty(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rapid.Check(t, func(t *rapid.T) {
		in := genNoteCreate().Draw(t, "input")

		created, err := env.notes.Create(ctx, in)
		require.NoError(t, err)

		got, err := env.notes.Get(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, in.Title, got.Title)
		require.Equal(t, in.Description, got.Description)
		require.Equal(t, in.CategoryID, got.CategoryID)
		if in.Priority == nil {
			require.Equal(t, model.DefaultPriority, got.Priority)
		} else {
			require.Equal(t, *in.Priority, got.Priority)
		}
		require.False(t, got.Time.IsZero())
	})
}

// An update changes exactly the fields it carries, plus time.
func TestNoteService_UpdateTouchesOnlyPresentFieldsProperty(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rapid.Check(t, func(t *rapid.T) {
		before, err := env.notes.Create(ctx, genNoteCreate().Draw(t, "input"))
		require.NoError(t, err)
		u := genNoteUpdate().Draw(t, "update")

		after, err := env.notes.Update(ctx, before.ID, u)
		require.NoError(t, err)

		want := *before
		applyNoteUpdate(&want, u)
		require.Equal(t, want.Title, after.Title)
		require.Equal(t, want.Description, after.Description)
		require.Equal(t, want.Priority, after.Priority)
		require.Equal(t, want.CategoryID, after.CategoryID)
		require.False(t, after.Time.Before(before.Time))
	})
}

// Titles outside 1..100 characters are always rejected and nothing is stored.
func TestNoteService_RejectsBadTitlesProperty(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rapid.Check(t, func(t *rapid.T) {
		title := ""
		if rapid.Bool().Draw(t, "too_long") {
			title = strings.Repeat("x", rapid.IntRange(model.TitleMaxLen+1, 300).Draw(t, "length"))
		}

		before, err := env.notes.List(ctx, Page{Limit: MaxLimit})
		require.NoError(t, err)

		_, err = env.notes.Create(ctx, NoteCreate{Title: title, CategoryID: 1})
		require.ErrorIs(t, err, domainerrors.ErrValidation)

		after, err := env.notes.List(ctx, Page{Limit: MaxLimit})
		require.NoError(t, err)
		require.Len(t, after, len(before))
	})
}

// Listing never returns more than MaxLimit items, whatever limit is asked for.
func TestNoteService_ListNeverExceedsMaxLimitProperty(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	for i := 0; i < 12; i++ {
		_, err := env.notes.Create(ctx, NoteCreate{Title: "n", CategoryID: 1})
		require.NoError(t, err)
	}

	rapid.Check(t, func(t *rapid.T) {
		offset := rapid.IntRange(0, 20).Draw(t, "offset")
		limit := rapid.IntRange(0, 1000).Draw(t, "limit")

		notes, err := env.notes.List(ctx, Page{Offset: offset, Limit: limit})
		require.NoError(t, err)

		expected := min(max(12-offset, 0), min(limit, MaxLimit))
		require.Len(t, notes, expected)
		for i := 1; i < len(notes); i++ {
			require.Less(t, notes[i-1].ID, notes[i].ID)
		}
	})
}
