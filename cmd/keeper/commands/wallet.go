package commands

import (
	"context"

	"theta-oracle-keeper/application/services"
	"theta-oracle-keeper/infrastructure/config"

	"github.com/spf13/cobra"
)

// nativeDecimals is the wei precision of the chain's native unit.
const nativeDecimals = 18

// NewWalletCommand creates the wallet command.
func NewWalletCommand(container *config.Container) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "wallet [oracle-id]",
		Short: "Show an oracle's derived wallet and balance",
		Long: `Derives the oracle's wallet address through the remote signer and
queries its native-token balance. The derivation is deterministic, so
this works for oracles that are not registered yet.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			oracleID := args[0]
			ctx := context.Background()

			if err := ValidateFormat(outputFormat); err != nil {
				return err
			}

			info, err := container.DeriveWalletUseCase.Derive(ctx, oracleID)
			if err != nil {
				return err
			}

			balance, err := container.DeriveWalletUseCase.Balance(ctx, oracleID)
			if err != nil {
				return err
			}

			result := map[string]interface{}{
				"oracle":         info.OracleID,
				"derivationPath": info.DerivationPath,
				"address":        info.Address.Hex(),
				"balanceWei":     balance.String(),
				"balance":        services.ToDecimalString(balance, nativeDecimals, services.DefaultDisplayPlaces),
			}

			formatter := NewOutputFormatter(outputFormat)
			return formatter.Print(result)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", OutputFormatJSON, "output format (json, yaml)")
	return cmd
}
