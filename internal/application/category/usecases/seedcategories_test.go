package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventora/eventora/internal/infrastructure/persistence/testdb"
	"github.com/eventora/eventora/internal/infrastructure/repository"
	"github.com/eventora/eventora/internal/shared/logger"
)

func TestSeedCategories(t *testing.T) {
	repo := repository.NewCategoryRepository(testdb.New(t))
	ctx := context.Background()

	seed := NewSeedCategoriesUseCase(repo, logger.NewNop())
	n, err := seed.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	// Reseeding is idempotent.
	_, err = seed.Execute(ctx)
	require.NoError(t, err)

	list, err := NewListCategoriesUseCase(repo, logger.NewNop()).Execute(ctx)
	require.NoError(t, err)
	require.Len(t, list, 8)
	assert.Equal(t, "music-concerts", list[0].Slug)
	assert.Equal(t, "#8B5CF6", list[0].Color)
	assert.Equal(t, "education", list[7].Slug)
}

func TestSeedCategories_InvalidSource(t *testing.T) {
	repo := repository.NewCategoryRepository(testdb.New(t))
	seed := NewSeedCategoriesUseCase(repo, logger.NewNop())

	seed.source = []byte("categories:\n  - name: Nameless slug\n")
	_, err := seed.Execute(context.Background())
	assert.ErrorContains(t, err, "slug is required")

	seed.source = []byte("categories: [")
	_, err = seed.Execute(context.Background())
	assert.ErrorContains(t, err, "failed to parse category seeds")
}
