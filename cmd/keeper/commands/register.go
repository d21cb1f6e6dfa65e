package commands

import (
	"context"

	"theta-oracle-keeper/domain/interfaces"
	"theta-oracle-keeper/infrastructure/config"

	"github.com/spf13/cobra"
)

// NewRegisterCommand creates the register command.
func NewRegisterCommand(container *config.Container) *cobra.Command {
	var (
		description     string
		apiEndpoint     string
		dataPath        string
		intervalMinutes int
		multiplier      int64
		outputFormat    string
	)

	cmd := &cobra.Command{
		Use:   "register [oracle-id]",
		Short: "Register a new oracle",
		Long: `Registers a new oracle: validates the configuration, derives the
oracle's wallet through the remote signer, and persists the config.
The oracle starts active and immediately due for its first update.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := ValidateFormat(outputFormat); err != nil {
				return err
			}

			cfg, err := container.RegisterOracleUseCase.Execute(ctx, interfaces.RegisterOracleParams{
				ID:                    args[0],
				Description:           description,
				APIEndpoint:           apiEndpoint,
				DataPath:              dataPath,
				UpdateIntervalMinutes: intervalMinutes,
				PriceMultiplier:       multiplier,
			})
			if err != nil {
				return err
			}

			result := map[string]interface{}{
				"oracle":          cfg.ID,
				"address":         cfg.Address.Hex(),
				"derivationPath":  cfg.DerivationPath,
				"apiEndpoint":     cfg.APIEndpoint,
				"dataPath":        cfg.DataPath,
				"intervalMinutes": cfg.UpdateIntervalMinutes,
				"priceMultiplier": cfg.PriceMultiplier,
			}

			formatter := NewOutputFormatter(outputFormat)
			return formatter.Print(result)
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "oracle description (max 200 chars)")
	cmd.Flags().StringVar(&apiEndpoint, "endpoint", "", "price API endpoint URL")
	cmd.Flags().StringVar(&dataPath, "path", "", "dotted path to the value in the API response")
	cmd.Flags().IntVar(&intervalMinutes, "interval", 0, "update interval in minutes (default 60)")
	cmd.Flags().Int64Var(&multiplier, "multiplier", 0, "price multiplier (default 100)")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", OutputFormatJSON, "output format (json, yaml)")

	_ = cmd.MarkFlagRequired("endpoint")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}
