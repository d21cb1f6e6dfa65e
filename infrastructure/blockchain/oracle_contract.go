package blockchain

import (
	"context"
	"math/big"
	"strings"

	"theta-oracle-keeper/domain/entities"
	"theta-oracle-keeper/domain/errors"
	"theta-oracle-keeper/domain/interfaces"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// oracleRegistryABI is the interface of the on-chain oracle registry:
// string-keyed records of (value, lastUpdateBlock, creator, hasError,
// description), writable only by the record's creator.
const oracleRegistryABI = `[
	{
		"name": "getOracle",
		"type": "function",
		"stateMutability": "view",
		"inputs": [{"name": "oracleId", "type": "string"}],
		"outputs": [
			{"name": "value", "type": "uint256"},
			{"name": "lastUpdateBlock", "type": "uint256"},
			{"name": "creator", "type": "address"},
			{"name": "hasError", "type": "bool"},
			{"name": "description", "type": "string"}
		]
	},
	{
		"name": "updateValue",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "oracleId", "type": "string"},
			{"name": "value", "type": "uint256"}
		],
		"outputs": []
	}
]`

// oracleContract implements the OracleContract interface.
type oracleContract struct {
	parsed  abi.ABI
	address common.Address
	chain   interfaces.ChainClient
	chainID int64
}

// NewOracleContract creates a binding to the oracle registry contract
// at the given address.
func NewOracleContract(address common.Address, chain interfaces.ChainClient, chainID int64) (interfaces.OracleContract, error) {
	parsed, err := abi.JSON(strings.NewReader(oracleRegistryABI))
	if err != nil {
		return nil, &errors.BlockchainError{
			Operation: "ParseABI",
			ChainID:   chainID,
			Err:       err,
		}
	}

	return &oracleContract{
		parsed:  parsed,
		address: address,
		chain:   chain,
		chainID: chainID,
	}, nil
}

// State returns the on-chain record for an oracle id. Unknown ids come
// back with a zero creator address.
func (c *oracleContract) State(ctx context.Context, oracleID string) (*entities.OracleOnChainState, error) {
	data, err := c.parsed.Pack("getOracle", oracleID)
	if err != nil {
		return nil, &errors.BlockchainError{
			Operation: "State.Pack",
			ChainID:   c.chainID,
			Err:       err,
		}
	}

	out, err := c.chain.Call(ctx, c.address, data)
	if err != nil {
		return nil, err
	}

	values, err := c.parsed.Unpack("getOracle", out)
	if err != nil {
		return nil, &errors.BlockchainError{
			Operation: "State.Unpack",
			ChainID:   c.chainID,
			Err:       err,
		}
	}

	value, _ := values[0].(*big.Int)
	lastUpdateBlock, _ := values[1].(*big.Int)
	creator, _ := values[2].(common.Address)
	hasError, _ := values[3].(bool)
	description, _ := values[4].(string)

	state := &entities.OracleOnChainState{
		Value:       value,
		Creator:     creator,
		HasError:    hasError,
		Description: description,
	}
	if lastUpdateBlock != nil {
		state.LastUpdateBlock = lastUpdateBlock.Uint64()
	}
	return state, nil
}

// Exists reports whether the oracle id has been deployed on-chain.
func (c *oracleContract) Exists(ctx context.Context, oracleID string) (bool, error) {
	state, err := c.State(ctx, oracleID)
	if err != nil {
		return false, err
	}
	return state.Exists(), nil
}

// UpdateCalldata builds the calldata for an updateValue transaction.
func (c *oracleContract) UpdateCalldata(oracleID string, value *big.Int) ([]byte, error) {
	data, err := c.parsed.Pack("updateValue", oracleID, value)
	if err != nil {
		return nil, &errors.BlockchainError{
			Operation: "UpdateCalldata.Pack",
			ChainID:   c.chainID,
			Err:       err,
		}
	}
	return data, nil
}

// Address returns the contract's deployed address.
func (c *oracleContract) Address() common.Address {
	return c.address
}
