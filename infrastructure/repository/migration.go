package repository

import (
	"context"

	"theta-oracle-keeper/domain/entities"
	"theta-oracle-keeper/domain/errors"
	"theta-oracle-keeper/domain/interfaces"

	"gorm.io/gorm"
)

// MigrateLegacyFields backfills configs that predate the
// priceMultiplier and updateIntervalMinutes fields. Runs once at store
// open so hot paths never re-derive defaults.
func MigrateLegacyFields(ctx context.Context, db *gorm.DB, logger interfaces.Logger) error {
	result := db.WithContext(ctx).
		Model(&oracleConfigModel{}).
		Where("price_multiplier IS NULL OR price_multiplier < 1").
		Update("price_multiplier", entities.DefaultPriceMultiplier)
	if result.Error != nil {
		return &errors.RepositoryError{
			Operation: "MigrateLegacyFields",
			Entity:    "OracleConfig",
			Err:       result.Error,
		}
	}
	migrated := result.RowsAffected

	result = db.WithContext(ctx).
		Model(&oracleConfigModel{}).
		Where("update_interval_minutes IS NULL OR update_interval_minutes < 1").
		Update("update_interval_minutes", entities.DefaultUpdateIntervalMinutes)
	if result.Error != nil {
		return &errors.RepositoryError{
			Operation: "MigrateLegacyFields",
			Entity:    "OracleConfig",
			Err:       result.Error,
		}
	}
	migrated += result.RowsAffected

	if migrated > 0 {
		logger.Info("Backfilled legacy oracle config fields", "rows", migrated)
	}
	return nil
}
