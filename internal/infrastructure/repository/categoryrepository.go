package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/eventora/eventora/internal/domain/category"
	"github.com/eventora/eventora/internal/infrastructure/persistence/mappers"
	"github.com/eventora/eventora/internal/infrastructure/persistence/models"
	"github.com/eventora/eventora/internal/shared/db"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	var categoryModels []models.CategoryModel
	if err := db.GetTxFromContext(ctx, r.db).
		Order("sort_order ASC, name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*category.Category, 0, len(categoryModels))
	for i := range categoryModels {
		categories = append(categories, mappers.CategoryToDomain(&categoryModels[i]))
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	var model models.CategoryModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return mappers.CategoryToDomain(&model), nil
}

func (r *CategoryRepository) Upsert(ctx context.Context, c *category.Category) error {
	model := mappers.CategoryToModel(c)
	err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description", "icon", "color", "sort_order"}),
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert category %s: %w", c.Slug(), err)
	}
	return nil
}
