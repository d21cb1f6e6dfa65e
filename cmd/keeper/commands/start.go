package commands

import (
	"os"
	"os/signal"
	"syscall"

	"theta-oracle-keeper/infrastructure/config"

	"github.com/spf13/cobra"
)

// NewStartCommand creates the start command that runs the update
// scheduler until interrupted.
func NewStartCommand(container *config.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Run the oracle update scheduler",
		Long: `Starts the background scheduler that polls all registered oracles,
computes due-ness from their update intervals, and pushes fresh values
on-chain. Runs until SIGINT or SIGTERM.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			container.Scheduler.Start()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh

			container.Logger.Info("Received signal, shutting down", "signal", sig.String())
			container.Scheduler.Stop()
			return nil
		},
	}

	return cmd
}
