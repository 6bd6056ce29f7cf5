package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	categoryUsecases "github.com/eventora/eventora/internal/application/category/usecases"
	"github.com/eventora/eventora/internal/infrastructure/database"
	"github.com/eventora/eventora/internal/infrastructure/repository"
	"github.com/eventora/eventora/internal/interfaces/cli/bootstrap"
	"github.com/eventora/eventora/internal/shared/constants"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data",
		Long:  `Upsert the default event categories. Safe to run repeatedly.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	_, log, err := bootstrap.Init(bootstrap.ResolveEnv(env))
	if err != nil {
		return err
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	uc := categoryUsecases.NewSeedCategoriesUseCase(repository.NewCategoryRepository(database.Get()), log)
	count, err := uc.Execute(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d categories\n", count)
	return nil
}
