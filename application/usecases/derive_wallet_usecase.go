package usecases

import (
	"context"
	"math/big"
	"regexp"

	"theta-oracle-keeper/domain/entities"
	"theta-oracle-keeper/domain/errors"
	"theta-oracle-keeper/domain/interfaces"
)

var oracleIDRe = regexp.MustCompile(entities.OracleIDPattern)

// deriveWalletUseCase implements the DeriveWalletUseCase interface.
type deriveWalletUseCase struct {
	signer interfaces.SignerService
	chain  interfaces.ChainClient
	logger interfaces.Logger
}

// NewDeriveWalletUseCase creates a new wallet derivation use case.
func NewDeriveWalletUseCase(
	signer interfaces.SignerService,
	chain interfaces.ChainClient,
	logger interfaces.Logger,
) interfaces.DeriveWalletUseCase {
	return &deriveWalletUseCase{
		signer: signer,
		chain:  chain,
		logger: logger,
	}
}

// Derive maps an oracle id to its deterministic wallet. The derivation
// path is the oracle id itself: human-readable, 1:1, and recomputable
// without stored state.
func (uc *deriveWalletUseCase) Derive(ctx context.Context, oracleID string) (*entities.WalletInfo, error) {
	if !oracleIDRe.MatchString(oracleID) {
		validationErr := &errors.ValidationError{}
		validationErr.AddFieldError("oracle_id", "must match "+entities.OracleIDPattern)
		return nil, validationErr
	}

	address, err := uc.signer.DeriveAddress(ctx, oracleID)
	if err != nil {
		uc.logger.Error("Wallet derivation failed", "oracle", oracleID, "error", err)
		return nil, err
	}

	return &entities.WalletInfo{
		OracleID:       oracleID,
		DerivationPath: oracleID,
		Address:        address,
	}, nil
}

// Balance returns the derived wallet's balance in wei. RPC failures
// propagate as errors: callers must never mistake them for a zero
// balance.
func (uc *deriveWalletUseCase) Balance(ctx context.Context, oracleID string) (*big.Int, error) {
	info, err := uc.Derive(ctx, oracleID)
	if err != nil {
		return nil, err
	}

	balance, err := uc.chain.Balance(ctx, info.Address)
	if err != nil {
		uc.logger.Error("Balance query failed", "oracle", oracleID, "address", info.Address.Hex(), "error", err)
		return nil, err
	}
	return balance, nil
}
