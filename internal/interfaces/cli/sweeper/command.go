package sweeper

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	orderUsecases "github.com/eventora/eventora/internal/application/order/usecases"
	"github.com/eventora/eventora/internal/infrastructure/database"
	"github.com/eventora/eventora/internal/infrastructure/repository"
	"github.com/eventora/eventora/internal/infrastructure/scheduler"
	"github.com/eventora/eventora/internal/interfaces/cli/bootstrap"
	"github.com/eventora/eventora/internal/shared/constants"
	"github.com/eventora/eventora/internal/shared/db"
)

var env string

// NewCommand runs the expired-hold sweep outside the API process, for
// deployments that set ledger.release_expired to false on the API nodes.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweeper",
		Short: "Release capacity held by unpaid orders",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Init(bootstrap.ResolveEnv(env))
	if err != nil {
		return err
	}
	defer database.Close()

	gdb := database.Get()
	uc := orderUsecases.NewReleaseExpiredOrdersUseCase(
		repository.NewOrderRepository(gdb),
		repository.NewTicketTypeRepository(gdb),
		db.NewTransactionManager(gdb),
		orderUsecases.NopRecorder(),
		log,
		cfg.Ledger.SweepBatchSize,
	)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sched := scheduler.NewOrderScheduler(uc, cfg.Ledger.SweepInterval(), log)
	sched.Start(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	log.Infow("received signal, shutting down", "signal", sig.String())
	sched.Stop()
	return nil
}
