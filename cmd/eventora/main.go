package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/eventora/eventora/internal/interfaces/cli/migrate"
	"github.com/eventora/eventora/internal/interfaces/cli/seed"
	"github.com/eventora/eventora/internal/interfaces/cli/server"
	"github.com/eventora/eventora/internal/interfaces/cli/sweeper"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "eventora",
		Short: "Eventora - event ticketing ledger",
		Long:  `Eventora sells event tickets against fixed capacity and keeps the order and ticket ledger consistent.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		sweeper.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
