package service

import (
	"context"
	"errors"

	domainerrors "notes-api/internal/errors"
	"notes-api/internal/model"
	"notes-api/internal/repository"
	"notes-api/internal/validation"
)

// CategoryService exposes the read-only category lookup table.
type CategoryService struct {
	repo      *repository.CategoryRepository
	notes     *repository.NoteRepository
	validator *validation.Validator
}

func NewCategoryService(repo *repository.CategoryRepository, notes *repository.NoteRepository, v *validation.Validator) *CategoryService {
	return &CategoryService{repo: repo, notes: notes, validator: v}
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*model.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, categoryError(id, err)
	}
	return category, nil
}

// ListNotes pages through the notes filed under one category.
func (s *CategoryService) ListNotes(ctx context.Context, id uint, page Page) ([]model.Note, error) {
	page, err := normalizePage(s.validator, page)
	if err != nil {
		return nil, err
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.notes.ListByCategory(ctx, id, page.Offset, page.Limit)
}

func categoryError(id uint, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domainerrors.NotFound("Category not found").
			WithDetails(map[string]uint{"id": id}).
			WithCause(err)
	}
	return err
}
