package interfaces

import (
	"context"
	"math/big"

	"theta-oracle-keeper/domain/entities"
)

// UpdateOracleUseCase executes one end-to-end oracle update: fetch the
// API, extract and scale the value, compare against on-chain state, and
// sign and broadcast the update transaction.
type UpdateOracleUseCase interface {
	// Execute runs one update attempt for the given oracle id. A nil
	// error with Outcome.Skipped set means no transaction was needed
	// (unchanged value, or an update was already in flight).
	Execute(ctx context.Context, oracleID string) (*entities.UpdateOutcome, error)
}

// DeriveWalletUseCase resolves oracle ids to their derived wallets.
type DeriveWalletUseCase interface {
	// Derive returns the wallet address and derivation path for an
	// oracle id. The derivation path equals the oracle id.
	Derive(ctx context.Context, oracleID string) (*entities.WalletInfo, error)

	// Balance returns the wallet's native-token balance in wei. An RPC
	// failure is an error, never a zero balance.
	Balance(ctx context.Context, oracleID string) (*big.Int, error)
}

// RegisterOracleParams are the inputs for registering a new oracle.
type RegisterOracleParams struct {
	ID                    string
	Description           string
	APIEndpoint           string
	DataPath              string
	UpdateIntervalMinutes int
	PriceMultiplier       int64
}

// RegisterOracleUseCase validates and persists a new oracle config,
// deriving its wallet in the process.
type RegisterOracleUseCase interface {
	Execute(ctx context.Context, params RegisterOracleParams) (*entities.OracleConfig, error)
}
