package main

import (
	"os"

	"theta-oracle-keeper/cmd/keeper/commands"
	"theta-oracle-keeper/infrastructure/config"

	"github.com/spf13/cobra"
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "keeper",
		Short: "On-chain oracle update keeper",
		Long: `A keeper that registers API-backed oracles, derives their wallets
through a remote custodial signer, and periodically pushes fixed-point
values to the oracle registry contract.`,
	}

	// Global flags
	var configPath string
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")

	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		rootCmd.PrintErrf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Create dependency container
	container, err := config.NewContainer(cfg)
	if err != nil {
		rootCmd.PrintErrf("Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer container.Close()

	// Add commands
	rootCmd.AddCommand(
		commands.NewStartCommand(container),
		commands.NewUpdateCommand(container),
		commands.NewRegisterCommand(container),
		commands.NewListCommand(container),
		commands.NewWalletCommand(container),
		commands.NewVersionCommand(),
	)

	// Execute
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
