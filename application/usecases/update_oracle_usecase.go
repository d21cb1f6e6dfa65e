// Package usecases contains application use cases that orchestrate the
// oracle keeper's business logic: executing updates, deriving wallets,
// and registering oracles.
package usecases

import (
	"context"
	"math/big"
	"time"

	"theta-oracle-keeper/application/services"
	"theta-oracle-keeper/domain/entities"
	"theta-oracle-keeper/domain/errors"
	"theta-oracle-keeper/domain/interfaces"

	"github.com/google/uuid"
)

// Skip reasons reported in UpdateOutcome.
const (
	SkipReasonUnchanged     = "value unchanged"
	SkipReasonInProgress    = "update already in progress"
	SkipReasonNonceConflict = "nonce conflict, transaction likely already pending"
)

// minGasReserveWei is the minimum wallet balance required before an
// update is attempted: 0.001 of the native unit.
var minGasReserveWei = big.NewInt(1_000_000_000_000_000)

// updateOracleUseCase implements the UpdateOracleUseCase interface.
type updateOracleUseCase struct {
	store     interfaces.ConfigStore
	contract  interfaces.OracleContract
	chain     interfaces.ChainClient
	signer    interfaces.SignerService
	prices    interfaces.PriceSource
	submitter interfaces.TransactionSubmitter
	guard     *services.UpdateGuard
	metrics   interfaces.MetricsRecorder
	notifier  interfaces.Notifier
	logger    interfaces.Logger
	now       func() time.Time
}

// NewUpdateOracleUseCase creates a new oracle update use case.
func NewUpdateOracleUseCase(
	store interfaces.ConfigStore,
	contract interfaces.OracleContract,
	chain interfaces.ChainClient,
	signer interfaces.SignerService,
	prices interfaces.PriceSource,
	submitter interfaces.TransactionSubmitter,
	guard *services.UpdateGuard,
	metrics interfaces.MetricsRecorder,
	notifier interfaces.Notifier,
	logger interfaces.Logger,
) interfaces.UpdateOracleUseCase {
	return &updateOracleUseCase{
		store:     store,
		contract:  contract,
		chain:     chain,
		signer:    signer,
		prices:    prices,
		submitter: submitter,
		guard:     guard,
		metrics:   metrics,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

// Execute runs one end-to-end update attempt for the given oracle id.
func (uc *updateOracleUseCase) Execute(ctx context.Context, oracleID string) (*entities.UpdateOutcome, error) {
	attemptID := uuid.New()
	started := uc.now()
	log := uc.logger.WithFields(map[string]interface{}{
		"oracle":  oracleID,
		"attempt": attemptID.String(),
	})

	cfg, err := uc.store.Get(ctx, oracleID)
	if err != nil {
		return nil, err
	}

	if !uc.guard.Acquire(oracleID) {
		log.Info("Update already in flight, skipping")
		return &entities.UpdateOutcome{
			AttemptID:  attemptID,
			OracleID:   oracleID,
			Skipped:    true,
			SkipReason: SkipReasonInProgress,
		}, nil
	}
	defer uc.guard.Release(oracleID)

	uc.applyLegacyDefaults(ctx, cfg, log)

	outcome, err := uc.attempt(ctx, cfg, attemptID, log)
	duration := uc.now().Sub(started)

	switch {
	case err != nil:
		uc.metrics.RecordUpdateAttempt(oracleID, "failed", duration)
		uc.persistFailure(ctx, oracleID, err, log)
		uc.alert(ctx, oracleID, err, log)
		return nil, err
	case outcome.Skipped:
		uc.metrics.RecordUpdateAttempt(oracleID, "skipped", duration)
		return outcome, nil
	default:
		uc.metrics.RecordUpdateAttempt(oracleID, "success", duration)
		uc.persistSuccess(ctx, cfg, outcome, log)
		return outcome, nil
	}
}

// attempt performs the gated update pipeline. Every step aborts the
// whole attempt on failure.
func (uc *updateOracleUseCase) attempt(
	ctx context.Context,
	cfg *entities.OracleConfig,
	attemptID uuid.UUID,
	log interfaces.Logger,
) (*entities.UpdateOutcome, error) {
	// Current on-chain state.
	state, err := uc.contract.State(ctx, cfg.ID)
	if err != nil {
		return nil, err
	}
	if !state.Exists() {
		return nil, errors.NewDomainError(errors.ErrOracleNotDeployed, cfg.ID)
	}

	// Fetch and extract the fresh value.
	body, err := uc.prices.Fetch(ctx, cfg.APIEndpoint)
	if err != nil {
		return nil, err
	}

	value, err := services.ExtractValue(body, cfg.DataPath)
	if err != nil {
		return nil, err
	}

	newValue := services.ToFixedPointInteger(value, cfg.PriceMultiplier)
	log.Debug("Extracted API value",
		"value", value.String(),
		"multiplier", cfg.PriceMultiplier,
		"fixedPoint", newValue.String())

	outcome := &entities.UpdateOutcome{
		AttemptID: attemptID,
		OracleID:  cfg.ID,
		OldValue:  state.Value,
		NewValue:  newValue,
	}

	// Unchanged values never go on-chain: broadcasting the same number
	// again would only burn gas.
	if state.Value != nil && state.Value.Cmp(newValue) == 0 {
		outcome.Skipped = true
		outcome.SkipReason = SkipReasonUnchanged
		return outcome, nil
	}

	// The contract rejects writers other than the creator; checking
	// here fails fast and saves the gas of a doomed transaction.
	sender, err := uc.signer.DeriveAddress(ctx, cfg.DerivationPath)
	if err != nil {
		return nil, err
	}
	if sender != state.Creator {
		return nil, &errors.NotCreatorError{
			OracleID: cfg.ID,
			Sender:   sender,
			Creator:  state.Creator,
		}
	}

	balance, err := uc.chain.Balance(ctx, sender)
	if err != nil {
		return nil, err
	}
	if balance.Cmp(minGasReserveWei) < 0 {
		return nil, errors.NewInsufficientFundsError(cfg.ID, sender, minGasReserveWei, balance)
	}

	data, err := uc.contract.UpdateCalldata(cfg.ID, newValue)
	if err != nil {
		return nil, err
	}

	result, err := uc.submitter.Submit(ctx, interfaces.SubmitRequest{
		DerivationPath: cfg.DerivationPath,
		From:           sender,
		To:             uc.contract.Address(),
		Value:          new(big.Int),
		Data:           data,
	})
	if err != nil {
		if errors.IsNonceConflict(err) {
			log.Info("Broadcast hit a nonce conflict, value likely already pending", "error", err)
			outcome.Skipped = true
			outcome.SkipReason = SkipReasonNonceConflict
			return outcome, nil
		}
		return nil, err
	}

	outcome.TxHash = result.TxHash
	return outcome, nil
}

// applyLegacyDefaults backfills multiplier and interval on configs that
// predate those fields and persists the backfill so future reads are
// consistent. The store's migration pass normally handles this; the
// defense here covers stores opened without it.
func (uc *updateOracleUseCase) applyLegacyDefaults(ctx context.Context, cfg *entities.OracleConfig, log interfaces.Logger) {
	patch := entities.OracleConfigPatch{}
	dirty := false

	if cfg.PriceMultiplier < 1 {
		cfg.PriceMultiplier = entities.DefaultPriceMultiplier
		patch.PriceMultiplier = &cfg.PriceMultiplier
		dirty = true
	}
	if cfg.UpdateIntervalMinutes < 1 {
		cfg.UpdateIntervalMinutes = entities.DefaultUpdateIntervalMinutes
		patch.UpdateIntervalMinutes = &cfg.UpdateIntervalMinutes
		dirty = true
	}

	if dirty {
		if err := uc.store.Update(ctx, cfg.ID, patch); err != nil {
			log.Warn("Failed to persist legacy field defaults", "error", err)
		}
	}
}

// persistSuccess stores the successful update: new timestamps, cleared
// error fields, and the audit trail.
func (uc *updateOracleUseCase) persistSuccess(
	ctx context.Context,
	cfg *entities.OracleConfig,
	outcome *entities.UpdateOutcome,
	log interfaces.Logger,
) {
	now := uc.now()
	hasError := false
	emptyMsg := ""
	txHash := outcome.TxHash.Hex()
	lastValue := outcome.NewValue.String()

	err := uc.store.Update(ctx, cfg.ID, entities.OracleConfigPatch{
		LastUpdate:   &now,
		HasError:     &hasError,
		ErrorMessage: &emptyMsg,
		LastTxHash:   &txHash,
		LastValue:    &lastValue,
	})
	if err != nil {
		log.Error("Failed to persist update result", "error", err)
	}

	scaled, _ := new(big.Float).Quo(
		new(big.Float).SetInt(outcome.NewValue),
		new(big.Float).SetInt64(cfg.PriceMultiplier),
	).Float64()
	uc.metrics.RecordOracleValue(cfg.ID, scaled)
}

// persistFailure records the failure on the config so it is durable and
// operator-visible. The config always reflects the most recent outcome.
func (uc *updateOracleUseCase) persistFailure(ctx context.Context, oracleID string, attemptErr error, log interfaces.Logger) {
	now := uc.now()
	hasError := true
	msg := attemptErr.Error()

	err := uc.store.Update(ctx, oracleID, entities.OracleConfigPatch{
		HasError:     &hasError,
		ErrorMessage: &msg,
		LastErrorAt:  &now,
	})
	if err != nil {
		log.Error("Failed to persist update failure", "error", err)
	}
}

// alert notifies the operator channel about the failure, best effort.
func (uc *updateOracleUseCase) alert(ctx context.Context, oracleID string, attemptErr error, log interfaces.Logger) {
	if uc.notifier == nil || !uc.notifier.IsConfigured() {
		return
	}
	if err := uc.notifier.NotifyUpdateFailure(ctx, oracleID, attemptErr.Error()); err != nil {
		log.Warn("Failed to send failure notification", "error", err)
	}
}
