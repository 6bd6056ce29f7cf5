package mappers

import (
	"github.com/eventora/eventora/internal/domain/category"
	"github.com/eventora/eventora/internal/infrastructure/persistence/models"
)

func CategoryToModel(c *category.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:          c.ID(),
		Name:        c.Name(),
		Slug:        c.Slug(),
		Description: c.Description(),
		Icon:        c.Icon(),
		Color:       c.Color(),
		SortOrder:   c.SortOrder(),
	}
}

func CategoryToDomain(model *models.CategoryModel) *category.Category {
	return category.ReconstructCategory(
		model.ID, model.Name, model.Slug, model.Description, model.Icon, model.Color, model.SortOrder,
	)
}
