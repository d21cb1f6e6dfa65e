package blockchain

import (
	"context"
	"math/big"
	"strings"
	"testing"

	"theta-oracle-keeper/test/helpers"
	"theta-oracle-keeper/test/mocks"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// packOracleRecord encodes a getOracle return tuple the way the
// contract would.
func packOracleRecord(t *testing.T, value *big.Int, block uint64, creator common.Address, hasError bool, description string) []byte {
	t.Helper()

	parsed, err := abi.JSON(strings.NewReader(oracleRegistryABI))
	require.NoError(t, err)

	out, err := parsed.Methods["getOracle"].Outputs.Pack(
		value, new(big.Int).SetUint64(block), creator, hasError, description,
	)
	require.NoError(t, err)
	return out
}

func TestOracleContract_State(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChain := mocks.NewMockChainClient(ctrl)
	contractAddr := helpers.RandomAddress()

	contract, err := NewOracleContract(contractAddr, mockChain, 365)
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("decodes a deployed oracle", func(t *testing.T) {
		creator := helpers.RandomAddress()
		response := packOracleRecord(t, big.NewInt(4250), 1234, creator, false, "BTC/USD")

		mockChain.EXPECT().
			Call(ctx, contractAddr, gomock.Any()).
			Return(response, nil)

		state, err := contract.State(ctx, "btc-usd")
		require.NoError(t, err)
		assert.Equal(t, "4250", state.Value.String())
		assert.Equal(t, uint64(1234), state.LastUpdateBlock)
		assert.Equal(t, creator, state.Creator)
		assert.False(t, state.HasError)
		assert.Equal(t, "BTC/USD", state.Description)
		assert.True(t, state.Exists())
	})

	t.Run("unknown id decodes to a non-existent state", func(t *testing.T) {
		response := packOracleRecord(t, big.NewInt(0), 0, common.Address{}, false, "")

		mockChain.EXPECT().
			Call(ctx, contractAddr, gomock.Any()).
			Return(response, nil)

		state, err := contract.State(ctx, "ghost")
		require.NoError(t, err)
		assert.False(t, state.Exists())
	})

	t.Run("rpc failure propagates", func(t *testing.T) {
		mockChain.EXPECT().
			Call(ctx, contractAddr, gomock.Any()).
			Return(nil, assert.AnError)

		state, err := contract.State(ctx, "btc-usd")
		require.Error(t, err)
		assert.Nil(t, state)
	})

	t.Run("garbage response fails to unpack", func(t *testing.T) {
		mockChain.EXPECT().
			Call(ctx, contractAddr, gomock.Any()).
			Return([]byte{0x01, 0x02}, nil)

		state, err := contract.State(ctx, "btc-usd")
		require.Error(t, err)
		assert.Nil(t, state)
	})
}

func TestOracleContract_Exists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChain := mocks.NewMockChainClient(ctrl)
	contractAddr := helpers.RandomAddress()

	contract, err := NewOracleContract(contractAddr, mockChain, 365)
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("deployed", func(t *testing.T) {
		response := packOracleRecord(t, big.NewInt(1), 1, helpers.RandomAddress(), false, "x")
		mockChain.EXPECT().Call(ctx, contractAddr, gomock.Any()).Return(response, nil)

		exists, err := contract.Exists(ctx, "btc-usd")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("not deployed", func(t *testing.T) {
		response := packOracleRecord(t, big.NewInt(0), 0, common.Address{}, false, "")
		mockChain.EXPECT().Call(ctx, contractAddr, gomock.Any()).Return(response, nil)

		exists, err := contract.Exists(ctx, "ghost")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestOracleContract_UpdateCalldata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	contract, err := NewOracleContract(helpers.RandomAddress(), mocks.NewMockChainClient(ctrl), 365)
	require.NoError(t, err)

	data, err := contract.UpdateCalldata("btc-usd", big.NewInt(4250))
	require.NoError(t, err)

	// Calldata round trips through the same ABI.
	parsed, err := abi.JSON(strings.NewReader(oracleRegistryABI))
	require.NoError(t, err)
	method, decodeErr := parsed.MethodById(data[:4])
	require.NoError(t, decodeErr)
	assert.Equal(t, "updateValue", method.Name)

	args, err := method.Inputs.Unpack(data[4:])
	require.NoError(t, err)
	assert.Equal(t, "btc-usd", args[0])
	assert.Equal(t, "4250", args[1].(*big.Int).String())
}
