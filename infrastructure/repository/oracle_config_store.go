// Package repository provides the gorm-backed oracle configuration
// store.
package repository

import (
	"context"
	"regexp"

	"theta-oracle-keeper/domain/entities"
	"theta-oracle-keeper/domain/errors"
	"theta-oracle-keeper/domain/interfaces"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// oracleConfigStore implements the ConfigStore interface.
type oracleConfigStore struct {
	db       *gorm.DB
	validate *validator.Validate
}

// NewOracleConfigStore creates a new oracle config store.
func NewOracleConfigStore(db *gorm.DB) interfaces.ConfigStore {
	return &oracleConfigStore{
		db:       db,
		validate: newConfigValidator(),
	}
}

// AutoMigrate creates or updates the oracle_configs table.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&oracleConfigModel{}); err != nil {
		return &errors.RepositoryError{
			Operation: "AutoMigrate",
			Entity:    "OracleConfig",
			Err:       err,
		}
	}
	return nil
}

// newConfigValidator builds the validator with the oracle_id rule.
func newConfigValidator() *validator.Validate {
	v := validator.New()
	idRe := regexp.MustCompile(entities.OracleIDPattern)
	_ = v.RegisterValidation("oracle_id", func(fl validator.FieldLevel) bool {
		return idRe.MatchString(fl.Field().String())
	})
	return v
}

// Load returns all oracle configs keyed by oracle id.
func (s *oracleConfigStore) Load(ctx context.Context) (map[string]entities.OracleConfig, error) {
	var models []oracleConfigModel
	if err := s.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, &errors.RepositoryError{
			Operation: "Load",
			Entity:    "OracleConfig",
			Err:       err,
		}
	}

	configs := make(map[string]entities.OracleConfig, len(models))
	for i := range models {
		configs[models[i].ID] = models[i].toEntity()
	}
	return configs, nil
}

// Save persists the full config map, replacing existing entries.
func (s *oracleConfigStore) Save(ctx context.Context, configs map[string]entities.OracleConfig) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id := range configs {
			cfg := configs[id]
			model := fromEntity(&cfg)
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &errors.RepositoryError{
			Operation: "Save",
			Entity:    "OracleConfig",
			Err:       err,
		}
	}
	return nil
}

// Get returns the config for one oracle id, or ErrNotFound.
func (s *oracleConfigStore) Get(ctx context.Context, oracleID string) (*entities.OracleConfig, error) {
	var model oracleConfigModel
	err := s.db.WithContext(ctx).First(&model, "id = ?", oracleID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errors.NewDomainError(errors.ErrNotFound, "oracle "+oracleID)
	}
	if err != nil {
		return nil, &errors.RepositoryError{
			Operation: "Get",
			Entity:    "OracleConfig",
			Err:       err,
		}
	}

	cfg := model.toEntity()
	return &cfg, nil
}

// Create inserts a new config after validating it.
func (s *oracleConfigStore) Create(ctx context.Context, config entities.OracleConfig) error {
	if err := s.validate.Struct(&config); err != nil {
		validationErr := &errors.ValidationError{}
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				validationErr.AddFieldError(fe.Field(), "failed rule "+fe.Tag())
			}
			return validationErr
		}
		return err
	}

	model := fromEntity(&config)
	if err := s.db.WithContext(ctx).Create(&model).Error; err != nil {
		return &errors.RepositoryError{
			Operation: "Create",
			Entity:    "OracleConfig",
			Err:       err,
		}
	}
	return nil
}

// Update applies a partial update to an existing config.
func (s *oracleConfigStore) Update(ctx context.Context, oracleID string, patch entities.OracleConfigPatch) error {
	columns := patchColumns(patch)
	if len(columns) == 0 {
		return nil
	}

	result := s.db.WithContext(ctx).
		Model(&oracleConfigModel{}).
		Where("id = ?", oracleID).
		Updates(columns)
	if result.Error != nil {
		return &errors.RepositoryError{
			Operation: "Update",
			Entity:    "OracleConfig",
			Err:       result.Error,
		}
	}
	if result.RowsAffected == 0 {
		return errors.NewDomainError(errors.ErrNotFound, "oracle "+oracleID)
	}
	return nil
}

// patchColumns maps the non-nil patch fields to column updates.
func patchColumns(patch entities.OracleConfigPatch) map[string]interface{} {
	columns := make(map[string]interface{})

	if patch.Description != nil {
		columns["description"] = *patch.Description
	}
	if patch.APIEndpoint != nil {
		columns["api_endpoint"] = *patch.APIEndpoint
	}
	if patch.DataPath != nil {
		columns["data_path"] = *patch.DataPath
	}
	if patch.UpdateIntervalMinutes != nil {
		columns["update_interval_minutes"] = *patch.UpdateIntervalMinutes
	}
	if patch.PriceMultiplier != nil {
		columns["price_multiplier"] = *patch.PriceMultiplier
	}
	if patch.Address != nil {
		columns["address"] = patch.Address.Hex()
	}
	if patch.IsActive != nil {
		columns["is_active"] = *patch.IsActive
	}
	if patch.LastUpdate != nil {
		columns["last_update"] = *patch.LastUpdate
	}
	if patch.LastErrorAt != nil {
		columns["last_error_at"] = *patch.LastErrorAt
	}
	if patch.HasError != nil {
		columns["has_error"] = *patch.HasError
	}
	if patch.ErrorMessage != nil {
		columns["error_message"] = *patch.ErrorMessage
	}
	if patch.LastTxHash != nil {
		columns["last_tx_hash"] = *patch.LastTxHash
	}
	if patch.LastValue != nil {
		columns["last_value"] = *patch.LastValue
	}
	return columns
}
