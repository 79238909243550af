package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"notes-api/internal/model"
)

// CategoryRepository reads the category lookup table.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &category, nil
}

func (r *CategoryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("find category: %w", err)
	}
	return count > 0, nil
}

// CategoryCount is the number of notes filed under one category.
type CategoryCount struct {
	CategoryID uint
	Type       model.CategoryType
	Notes      int64
}

// CountNotes returns a row per category, including empty ones.
func (r *CategoryRepository) CountNotes(ctx context.Context) ([]CategoryCount, error) {
	var counts []CategoryCount
	err := r.db.WithContext(ctx).
		Model(&model.Category{}).
		Select("categories.id AS category_id, categories.type AS type, COUNT(notes.id) AS notes").
		Joins("LEFT JOIN notes ON notes.category_id = categories.id").
		Group("categories.id, categories.type").
		Order("categories.id ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("count notes per category: %w", err)
	}
	return counts, nil
}
