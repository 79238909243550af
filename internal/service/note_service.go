package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	domainerrors "notes-api/internal/errors"
	"notes-api/internal/model"
	"notes-api/internal/patch"
	"notes-api/internal/repository"
	"notes-api/internal/validation"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// NoteCreate is the input for creating a note.
type NoteCreate struct {
	Title       string  `json:"title" validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Priority    *int    `json:"priority" validate:"omitempty,gte=1,lte=5"`
	CategoryID  uint    `json:"category_id" validate:"required"`
}

// NoteUpdate is a partial update. Absent fields are left untouched.
type NoteUpdate struct {
	Title       patch.Field[string] `json:"title"`
	Description patch.Field[string] `json:"description"`
	Priority    patch.Field[int]    `json:"priority"`
	CategoryID  patch.Field[uint]   `json:"category_id"`
}

// DeleteResult confirms a removal.
type DeleteResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Page selects a window of a listing.
type Page struct {
	Offset int
	Limit  int
}

// NoteService wraps note persistence with validation and NotFound mapping.
type NoteService struct {
	notes      *repository.NoteRepository
	categories *repository.CategoryRepository
	validator  *validation.Validator
	log        *zap.Logger
	now        func() time.Time
}

func NewNoteService(notes *repository.NoteRepository, categories *repository.CategoryRepository, v *validation.Validator, log *zap.Logger) *NoteService {
	return &NoteService{
		notes:      notes,
		categories: categories,
		validator:  v,
		log:        log.Named("notes"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *NoteService) Create(ctx context.Context, input NoteCreate) (*model.Note, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}
	if err := s.requireCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	note := model.Note{
		Title:       input.Title,
		Description: input.Description,
		Priority:    model.DefaultPriority,
		CategoryID:  input.CategoryID,
		Time:        s.now(),
	}
	if input.Priority != nil {
		note.Priority = *input.Priority
	}

	if err := s.notes.Create(ctx, &note); err != nil {
		return nil, err
	}

	s.log.Debug("note created", zap.Uint("id", note.ID), zap.Uint("category_id", note.CategoryID))
	return &note, nil
}

// List returns a page of notes in id order. Limits above MaxLimit are
// clamped rather than rejected.
func (s *NoteService) List(ctx context.Context, page Page) ([]model.Note, error) {
	page, err := normalizePage(s.validator, page)
	if err != nil {
		return nil, err
	}
	return s.notes.List(ctx, page.Offset, page.Limit)
}

func (s *NoteService) Get(ctx context.Context, id uint) (*model.Note, error) {
	note, err := s.notes.FindByID(ctx, id)
	if err != nil {
		return nil, noteError(id, err)
	}
	return note, nil
}

// Update applies only the fields present in input and refreshes Time.
func (s *NoteService) Update(ctx context.Context, id uint, input NoteUpdate) (*model.Note, error) {
	if err := s.validateUpdate(input); err != nil {
		return nil, err
	}
	if input.CategoryID.HasValue() {
		if err := s.requireCategory(ctx, input.CategoryID.Value); err != nil {
			return nil, err
		}
	}

	note, err := s.notes.Update(ctx, id, func(n *model.Note) error {
		applyNoteUpdate(n, input)
		n.Time = s.now()
		return nil
	})
	if err != nil {
		return nil, noteError(id, err)
	}

	s.log.Debug("note updated", zap.Uint("id", id))
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, id uint) (*DeleteResult, error) {
	if err := s.notes.Delete(ctx, id); err != nil {
		return nil, noteError(id, err)
	}

	s.log.Debug("note deleted", zap.Uint("id", id))
	return &DeleteResult{
		Status:  "success",
		Message: fmt.Sprintf("Note %d deleted successfully", id),
	}, nil
}

// applyNoteUpdate overlays the present fields of input onto n. Validation
// has already rejected nulls for every field except description.
func applyNoteUpdate(n *model.Note, input NoteUpdate) {
	if input.Title.HasValue() {
		n.Title = input.Title.Value
	}
	if input.Description.Set {
		n.Description = input.Description.Ptr()
	}
	if input.Priority.HasValue() {
		n.Priority = input.Priority.Value
	}
	if input.CategoryID.HasValue() {
		n.CategoryID = input.CategoryID.Value
	}
}

func (s *NoteService) validateUpdate(input NoteUpdate) error {
	var nulls []domainerrors.FieldError
	var checks []validation.Check

	if input.Title.Set {
		if input.Title.Null {
			nulls = append(nulls, mustNotBeNull("title"))
		} else {
			checks = append(checks, validation.Check{Field: "title", Value: input.Title.Value, Tag: "min=1,max=100"})
		}
	}
	if input.Description.HasValue() {
		checks = append(checks, validation.Check{Field: "description", Value: input.Description.Value, Tag: "max=5000"})
	}
	if input.Priority.Set {
		if input.Priority.Null {
			nulls = append(nulls, mustNotBeNull("priority"))
		} else {
			checks = append(checks, validation.Check{Field: "priority", Value: input.Priority.Value, Tag: "gte=1,lte=5"})
		}
	}
	if input.CategoryID.Set {
		if input.CategoryID.Null {
			nulls = append(nulls, mustNotBeNull("category_id"))
		} else {
			checks = append(checks, validation.Check{Field: "category_id", Value: input.CategoryID.Value, Tag: "required"})
		}
	}

	err := s.validator.ValidateChecks(checks...)
	if len(nulls) == 0 {
		return err
	}
	var domainErr *domainerrors.Error
	if err != nil && !errors.As(err, &domainErr) {
		return err
	}
	if domainErr != nil {
		if fields, ok := domainErr.Details.([]domainerrors.FieldError); ok {
			nulls = append(nulls, fields...)
		}
	}
	return domainerrors.ValidationFields(nulls...)
}

func (s *NoteService) requireCategory(ctx context.Context, id uint) error {
	ok, err := s.categories.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domainerrors.ValidationFields(domainerrors.FieldError{
			Field:   "category_id",
			Message: fmt.Sprintf("category %d does not exist", id),
		})
	}
	return nil
}

func normalizePage(v *validation.Validator, page Page) (Page, error) {
	if err := v.ValidateChecks(
		validation.Check{Field: "offset", Value: page.Offset, Tag: "gte=0"},
		validation.Check{Field: "limit", Value: page.Limit, Tag: "gte=0"},
	); err != nil {
		return page, err
	}
	if page.Limit > MaxLimit {
		page.Limit = MaxLimit
	}
	return page, nil
}

func mustNotBeNull(field string) domainerrors.FieldError {
	return domainerrors.FieldError{Field: field, Message: "must not be null"}
}

func noteError(id uint, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domainerrors.NotFound("Note not found").
			WithDetails(map[string]uint{"id": id}).
			WithCause(err)
	}
	return err
}
