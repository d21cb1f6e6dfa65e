package commands

import (
	"context"

	"theta-oracle-keeper/infrastructure/config"

	"github.com/spf13/cobra"
)

// NewUpdateCommand creates the update command that triggers one oracle
// update immediately.
func NewUpdateCommand(container *config.Container) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "update [oracle-id]",
		Short: "Trigger an immediate update for one oracle",
		Long: `Runs one end-to-end update attempt for the given oracle id, going
through the same in-flight guard as the scheduler. The raw error is
surfaced here in addition to being persisted on the config.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			oracleID := args[0]
			ctx := context.Background()

			if err := ValidateFormat(outputFormat); err != nil {
				return err
			}

			outcome, err := container.UpdateOracleUseCase.Execute(ctx, oracleID)
			if err != nil {
				return err
			}

			result := map[string]interface{}{
				"oracle":  oracleID,
				"attempt": outcome.AttemptID.String(),
				"skipped": outcome.Skipped,
			}
			if outcome.Skipped {
				result["reason"] = outcome.SkipReason
			} else {
				result["oldValue"] = outcome.OldValue.String()
				result["newValue"] = outcome.NewValue.String()
				result["txHash"] = outcome.TxHash.Hex()
			}

			formatter := NewOutputFormatter(outputFormat)
			return formatter.Print(result)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", OutputFormatJSON, "output format (json, yaml)")
	return cmd
}
