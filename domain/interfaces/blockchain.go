package interfaces

import (
	"context"
	"math/big"

	"theta-oracle-keeper/domain/entities"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ChainClient represents the interface for blockchain RPC operations.
type ChainClient interface {
	// ChainID returns the chain identifier the client is connected to.
	ChainID(ctx context.Context) (*big.Int, error)

	// GasPrice returns the current suggested gas price.
	GasPrice(ctx context.Context) (*big.Int, error)

	// PendingNonce returns the next nonce for the given sender address.
	PendingNonce(ctx context.Context, address common.Address) (uint64, error)

	// EstimateGas estimates the gas needed for a contract call.
	EstimateGas(ctx context.Context, from, to common.Address, data []byte) (uint64, error)

	// Call executes a read-only contract call and returns the raw result.
	Call(ctx context.Context, to common.Address, data []byte) ([]byte, error)

	// Balance returns the native-token balance of an address in wei.
	Balance(ctx context.Context, address common.Address) (*big.Int, error)

	// Broadcast submits a signed transaction and returns its hash.
	Broadcast(ctx context.Context, tx *types.Transaction) (common.Hash, error)

	// Close closes the underlying RPC connection.
	Close() error
}

// OracleContract handles interactions with the on-chain oracle registry
// contract.
type OracleContract interface {
	// State returns the on-chain record for an oracle id. The returned
	// state has a zero creator address when the oracle does not exist.
	State(ctx context.Context, oracleID string) (*entities.OracleOnChainState, error)

	// Exists reports whether the oracle id has been deployed on-chain.
	Exists(ctx context.Context, oracleID string) (bool, error)

	// UpdateCalldata builds the ABI-encoded calldata for an updateValue
	// transaction.
	UpdateCalldata(oracleID string, value *big.Int) ([]byte, error)

	// Address returns the contract's deployed address.
	Address() common.Address
}

// SubmitRequest describes one transaction to sign and broadcast.
type SubmitRequest struct {
	DerivationPath string
	From           common.Address
	To             common.Address
	Value          *big.Int
	Data           []byte

	// GasLimit, when zero, is estimated from the call data.
	GasLimit uint64
}

// SubmitResult is the broadcast acknowledgment for a submitted
// transaction.
type SubmitResult struct {
	TxHash   common.Hash
	Nonce    uint64
	GasPrice *big.Int
	GasLimit uint64
}

// TransactionSubmitter drives the sign-and-broadcast protocol for one
// transaction: gas/nonce attachment, sighash computation, remote
// signing, reassembly, and broadcast. Any step failing aborts the whole
// attempt; a retry rebuilds from the current nonce and gas price.
type TransactionSubmitter interface {
	Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error)
}
