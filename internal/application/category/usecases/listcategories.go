package usecases

import (
	"context"
	"fmt"

	"github.com/eventora/eventora/internal/application/category/dto"
	"github.com/eventora/eventora/internal/domain/category"
	"github.com/eventora/eventora/internal/shared/logger"
)

type ListCategoriesExecutor interface {
	Execute(ctx context.Context) ([]*dto.CategoryDTO, error)
}

type ListCategoriesUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo category.Repository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryRepo: categoryRepo, logger: logger}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]*dto.CategoryDTO, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	result := make([]*dto.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		result = append(result, dto.ToCategoryDTO(c))
	}
	return result, nil
}
