package interfaces

import (
	"context"

	"theta-oracle-keeper/domain/entities"
)

// ConfigStore handles oracle configuration persistence.
type ConfigStore interface {
	// Load returns all oracle configs keyed by oracle id.
	Load(ctx context.Context) (map[string]entities.OracleConfig, error)

	// Save persists the full config map, replacing existing entries.
	Save(ctx context.Context, configs map[string]entities.OracleConfig) error

	// Get returns the config for one oracle id, or ErrNotFound.
	Get(ctx context.Context, oracleID string) (*entities.OracleConfig, error)

	// Create inserts a new config. Fails if the id already exists.
	Create(ctx context.Context, config entities.OracleConfig) error

	// Update applies a partial update to an existing config. Fails with
	// ErrNotFound if the id is absent.
	Update(ctx context.Context, oracleID string, patch entities.OracleConfigPatch) error
}
