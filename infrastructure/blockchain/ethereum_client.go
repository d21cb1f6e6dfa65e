// Package blockchain provides blockchain infrastructure for the oracle
// keeper: the Ethereum RPC client wrapper, the oracle contract binding,
// and the legacy-transaction submitter.
package blockchain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"theta-oracle-keeper/domain/errors"
	"theta-oracle-keeper/domain/interfaces"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// rpcTimeout bounds every individual RPC call. Unbounded awaits against
// a wedged node would otherwise stall the whole update loop.
const rpcTimeout = 15 * time.Second

// ethereumClient implements the ChainClient interface.
type ethereumClient struct {
	client  *ethclient.Client
	chainID int64
}

// NewEthereumClient creates a new Ethereum client and verifies it is
// connected to the expected chain.
func NewEthereumClient(rpcURL string, chainID int64) (interfaces.ChainClient, error) {
	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, &errors.BlockchainError{
			Operation: "Dial",
			ChainID:   chainID,
			Err:       err,
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	networkID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, &errors.BlockchainError{
			Operation: "ChainID",
			ChainID:   chainID,
			Err:       err,
		}
	}

	if networkID.Int64() != chainID {
		client.Close()
		return nil, &errors.BlockchainError{
			Operation: "ChainID",
			ChainID:   chainID,
			Err:       fmt.Errorf("chain ID mismatch: expected %d, got %d", chainID, networkID.Int64()),
		}
	}

	return &ethereumClient{
		client:  client,
		chainID: chainID,
	}, nil
}

// ChainID returns the chain identifier the client is connected to.
func (c *ethereumClient) ChainID(ctx context.Context) (*big.Int, error) {
	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	id, err := c.client.ChainID(ctx)
	if err != nil {
		return nil, &errors.BlockchainError{Operation: "ChainID", ChainID: c.chainID, Err: err}
	}
	return id, nil
}

// GasPrice returns the current suggested gas price.
func (c *ethereumClient) GasPrice(ctx context.Context) (*big.Int, error) {
	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	price, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, &errors.BlockchainError{Operation: "GasPrice", ChainID: c.chainID, Err: err}
	}
	return price, nil
}

// PendingNonce returns the next nonce for the given sender address,
// including pending transactions.
func (c *ethereumClient) PendingNonce(ctx context.Context, address common.Address) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	nonce, err := c.client.PendingNonceAt(ctx, address)
	if err != nil {
		return 0, &errors.BlockchainError{Operation: "PendingNonce", ChainID: c.chainID, Err: err}
	}
	return nonce, nil
}

// EstimateGas estimates the gas needed for a contract call.
func (c *ethereumClient) EstimateGas(ctx context.Context, from, to common.Address, data []byte) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	gas, err := c.client.EstimateGas(ctx, ethereum.CallMsg{
		From: from,
		To:   &to,
		Data: data,
	})
	if err != nil {
		return 0, &errors.BlockchainError{Operation: "EstimateGas", ChainID: c.chainID, Err: err}
	}
	return gas, nil
}

// Call executes a read-only contract call against the latest block.
func (c *ethereumClient) Call(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	out, err := c.client.CallContract(ctx, ethereum.CallMsg{
		To:   &to,
		Data: data,
	}, nil)
	if err != nil {
		return nil, &errors.BlockchainError{Operation: "Call", ChainID: c.chainID, Err: err}
	}
	return out, nil
}

// Balance returns the native-token balance of an address in wei.
func (c *ethereumClient) Balance(ctx context.Context, address common.Address) (*big.Int, error) {
	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	balance, err := c.client.BalanceAt(ctx, address, nil)
	if err != nil {
		return nil, &errors.BlockchainError{Operation: "Balance", ChainID: c.chainID, Err: err}
	}
	return balance, nil
}

// Broadcast submits a signed transaction and returns its hash.
func (c *ethereumClient) Broadcast(ctx context.Context, tx *types.Transaction) (common.Hash, error) {
	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	if err := c.client.SendTransaction(ctx, tx); err != nil {
		return common.Hash{}, &errors.BlockchainError{Operation: "Broadcast", ChainID: c.chainID, Err: err}
	}
	return tx.Hash(), nil
}

// Close closes the underlying RPC connection.
func (c *ethereumClient) Close() error {
	c.client.Close()
	return nil
}
