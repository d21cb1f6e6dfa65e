package usecases

import (
	"context"
	"net/url"
	"strings"
	"time"

	"theta-oracle-keeper/domain/entities"
	"theta-oracle-keeper/domain/errors"
	"theta-oracle-keeper/domain/interfaces"
)

// registerOracleUseCase implements the RegisterOracleUseCase interface.
type registerOracleUseCase struct {
	store  interfaces.ConfigStore
	wallet interfaces.DeriveWalletUseCase
	logger interfaces.Logger
	now    func() time.Time
}

// NewRegisterOracleUseCase creates a new oracle registration use case.
func NewRegisterOracleUseCase(
	store interfaces.ConfigStore,
	wallet interfaces.DeriveWalletUseCase,
	logger interfaces.Logger,
) interfaces.RegisterOracleUseCase {
	return &registerOracleUseCase{
		store:  store,
		wallet: wallet,
		logger: logger,
		now:    time.Now,
	}
}

// Execute validates the params, derives the oracle's wallet, and
// persists the new config. The oracle starts active and immediately
// due.
func (uc *registerOracleUseCase) Execute(
	ctx context.Context,
	params interfaces.RegisterOracleParams,
) (*entities.OracleConfig, error) {
	if err := uc.validateParams(params); err != nil {
		return nil, err
	}

	if existing, err := uc.store.Get(ctx, params.ID); err == nil && existing != nil {
		validationErr := &errors.ValidationError{}
		validationErr.AddFieldError("id", "oracle id already registered")
		return nil, validationErr
	}

	info, err := uc.wallet.Derive(ctx, params.ID)
	if err != nil {
		return nil, err
	}

	if params.PriceMultiplier == 0 {
		params.PriceMultiplier = entities.DefaultPriceMultiplier
	}
	if params.UpdateIntervalMinutes == 0 {
		params.UpdateIntervalMinutes = entities.DefaultUpdateIntervalMinutes
	}

	now := uc.now()
	cfg := entities.OracleConfig{
		ID:                    params.ID,
		Description:           params.Description,
		APIEndpoint:           params.APIEndpoint,
		DataPath:              params.DataPath,
		UpdateIntervalMinutes: params.UpdateIntervalMinutes,
		DerivationPath:        info.DerivationPath,
		Address:               info.Address,
		PriceMultiplier:       params.PriceMultiplier,
		IsActive:              true,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := uc.store.Create(ctx, cfg); err != nil {
		return nil, err
	}

	uc.logger.Info("Oracle registered",
		"oracle", cfg.ID,
		"address", cfg.Address.Hex(),
		"endpoint", cfg.APIEndpoint,
		"intervalMinutes", cfg.UpdateIntervalMinutes)
	return &cfg, nil
}

// validateParams validates the registration parameters.
func (uc *registerOracleUseCase) validateParams(params interfaces.RegisterOracleParams) error {
	validationErr := &errors.ValidationError{}

	if !oracleIDRe.MatchString(params.ID) {
		validationErr.AddFieldError("id", "must match "+entities.OracleIDPattern)
	}

	if len(params.Description) > 200 {
		validationErr.AddFieldError("description", "must not exceed 200 characters")
	}

	endpoint, err := url.Parse(params.APIEndpoint)
	if err != nil || !endpoint.IsAbs() || (endpoint.Scheme != "http" && endpoint.Scheme != "https") {
		validationErr.AddFieldError("api_endpoint", "must be an absolute http or https URL")
	}

	if strings.TrimSpace(params.DataPath) == "" {
		validationErr.AddFieldError("data_path", "data path is required")
	}

	if params.UpdateIntervalMinutes < 0 || params.UpdateIntervalMinutes > 10080 {
		validationErr.AddFieldError("update_interval_minutes", "must be between 1 and 10080")
	}

	if params.PriceMultiplier < 0 {
		validationErr.AddFieldError("price_multiplier", "must be positive")
	}

	if validationErr.HasErrors() {
		return validationErr
	}
	return nil
}
