package usecases

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/eventora/eventora/internal/domain/category"
	"github.com/eventora/eventora/internal/shared/logger"
)

//go:embed categories.yaml
var defaultCategories []byte

type categorySeed struct {
	Name        string `yaml:"name"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Color       string `yaml:"color"`
}

type categorySeedFile struct {
	Categories []categorySeed `yaml:"categories"`
}

// SeedCategoriesUseCase upserts the category reference data by slug.
// Running it again updates names and styling without duplicating rows.
type SeedCategoriesUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
	source       []byte
}

func NewSeedCategoriesUseCase(categoryRepo category.Repository, logger logger.Interface) *SeedCategoriesUseCase {
	return &SeedCategoriesUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
		source:       defaultCategories,
	}
}

// Execute returns the number of categories written.
func (uc *SeedCategoriesUseCase) Execute(ctx context.Context) (int, error) {
	var file categorySeedFile
	if err := yaml.Unmarshal(uc.source, &file); err != nil {
		return 0, fmt.Errorf("failed to parse category seeds: %w", err)
	}

	for i, seed := range file.Categories {
		c, err := category.NewCategory(seed.Name, seed.Slug, seed.Description, seed.Icon, seed.Color, i)
		if err != nil {
			return i, fmt.Errorf("invalid category seed %d: %w", i, err)
		}
		if err := uc.categoryRepo.Upsert(ctx, c); err != nil {
			uc.logger.Errorw("failed to seed category", "error", err, "slug", seed.Slug)
			return i, fmt.Errorf("failed to seed category %s: %w", seed.Slug, err)
		}
	}

	uc.logger.Infow("categories seeded", "count", len(file.Categories))
	return len(file.Categories), nil
}
