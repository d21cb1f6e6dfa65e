package commands

import (
	"context"
	"sort"
	"time"

	"theta-oracle-keeper/infrastructure/config"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(container *config.Container) *cobra.Command {
	var (
		outputFormat string
		dueOnly      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered oracles",
		Long:  `Lists all registered oracles with their due-ness and last-known update status.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()

			if err := ValidateFormat(outputFormat); err != nil {
				return err
			}

			configs, err := container.ConfigStore.Load(ctx)
			if err != nil {
				return err
			}

			now := time.Now()
			rows := make([]map[string]interface{}, 0, len(configs))
			for _, cfg := range configs {
				due := cfg.IsDue(now)
				if dueOnly && !(due && cfg.IsActive) {
					continue
				}

				row := map[string]interface{}{
					"oracle":          cfg.ID,
					"address":         cfg.Address.Hex(),
					"endpoint":        cfg.APIEndpoint,
					"dataPath":        cfg.DataPath,
					"intervalMinutes": cfg.UpdateIntervalMinutes,
					"active":          cfg.IsActive,
					"due":             due,
					"nextUpdate":      cfg.NextUpdateAt(now).Format(time.RFC3339),
					"hasError":        cfg.HasError,
				}
				if cfg.HasError {
					row["errorMessage"] = cfg.ErrorMessage
				}
				if cfg.LastValue != "" {
					row["lastValue"] = cfg.LastValue
					row["lastTxHash"] = cfg.LastTxHash
				}
				rows = append(rows, row)
			}

			sort.Slice(rows, func(i, j int) bool {
				return rows[i]["oracle"].(string) < rows[j]["oracle"].(string)
			})

			formatter := NewOutputFormatter(outputFormat)
			return formatter.Print(rows)
		},
	}

	cmd.Flags().BoolVar(&dueOnly, "due", false, "only show active oracles currently due for update")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", OutputFormatJSON, "output format (json, yaml)")
	return cmd
}
