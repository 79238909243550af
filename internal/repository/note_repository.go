package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"notes-api/internal/model"
)

// NoteRepository handles CRUD for notes.
type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, note *model.Note) error {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return fmt.Errorf("create note: %w", err)
	}
	return nil
}

// List returns notes in id order, skipping offset rows.
func (r *NoteRepository) List(ctx context.Context, offset, limit int) ([]model.Note, error) {
	notes := []model.Note{}
	if err := r.db.WithContext(ctx).Order("id ASC").Offset(offset).Limit(limit).Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (r *NoteRepository) ListByCategory(ctx context.Context, categoryID uint, offset, limit int) ([]model.Note, error) {
	notes := []model.Note{}
	if err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).
		Order("id ASC").Offset(offset).Limit(limit).
		Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("list notes by category: %w", err)
	}
	return notes, nil
}

func (r *NoteRepository) FindByID(ctx context.Context, id uint) (*model.Note, error) {
	var note model.Note
	if err := r.db.WithContext(ctx).First(&note, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &note, nil
}

// Update loads the note, lets mutate change it and saves the result in one
// transaction. A mutate error aborts without writing.
func (r *NoteRepository) Update(ctx context.Context, id uint, mutate func(*model.Note) error) (*model.Note, error) {
	var note model.Note
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&note, id).Error; err != nil {
			return notFound(err)
		}
		if err := mutate(&note); err != nil {
			return err
		}
		if err := tx.Save(&note).Error; err != nil {
			return fmt.Errorf("update note: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Delete removes the note permanently.
func (r *NoteRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Note{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete note: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
