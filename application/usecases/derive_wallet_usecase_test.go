package usecases

import (
	"context"
	"math/big"
	"testing"

	"theta-oracle-keeper/domain/errors"
	"theta-oracle-keeper/test/helpers"
	"theta-oracle-keeper/test/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveWalletUseCase_Derive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSigner := mocks.NewMockSignerService(ctrl)
	mockChain := mocks.NewMockChainClient(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	useCase := NewDeriveWalletUseCase(mockSigner, mockChain, mockLogger)
	ctx := context.Background()

	t.Run("derivation path equals the oracle id", func(t *testing.T) {
		address := helpers.RandomAddress()
		mockSigner.EXPECT().DeriveAddress(ctx, "btc-usd").Return(address, nil)

		info, err := useCase.Derive(ctx, "btc-usd")
		require.NoError(t, err)
		assert.Equal(t, "btc-usd", info.OracleID)
		assert.Equal(t, "btc-usd", info.DerivationPath)
		assert.Equal(t, address, info.Address)
	})

	t.Run("invalid oracle id", func(t *testing.T) {
		for _, id := range []string{"", "ab", "UPPER", "has space", "bad!chars"} {
			info, err := useCase.Derive(ctx, id)
			require.Error(t, err, "id %q", id)
			assert.Nil(t, info)

			validErr, ok := err.(*errors.ValidationError)
			require.True(t, ok)
			assert.Contains(t, validErr.Fields, "oracle_id")
		}
	})

	t.Run("signer failure propagates", func(t *testing.T) {
		mockSigner.EXPECT().
			DeriveAddress(ctx, "btc-usd").
			Return(helpers.RandomAddress(), &errors.ExternalServiceError{
				Service:   "signer",
				Operation: "DeriveAddress",
				Err:       assert.AnError,
			})

		info, err := useCase.Derive(ctx, "btc-usd")
		require.Error(t, err)
		assert.Nil(t, info)
	})
}

func TestDeriveWalletUseCase_Balance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSigner := mocks.NewMockSignerService(ctrl)
	mockChain := mocks.NewMockChainClient(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	useCase := NewDeriveWalletUseCase(mockSigner, mockChain, mockLogger)
	ctx := context.Background()

	t.Run("returns the wallet balance", func(t *testing.T) {
		address := helpers.RandomAddress()
		mockSigner.EXPECT().DeriveAddress(ctx, "btc-usd").Return(address, nil)
		mockChain.EXPECT().Balance(ctx, address).Return(big.NewInt(12345), nil)

		balance, err := useCase.Balance(ctx, "btc-usd")
		require.NoError(t, err)
		assert.Equal(t, "12345", balance.String())
	})

	t.Run("rpc failure is an error, not a zero balance", func(t *testing.T) {
		address := helpers.RandomAddress()
		mockSigner.EXPECT().DeriveAddress(ctx, "btc-usd").Return(address, nil)
		mockChain.EXPECT().Balance(ctx, address).Return(nil, &errors.BlockchainError{
			Operation: "BalanceAt",
			Err:       assert.AnError,
		})

		balance, err := useCase.Balance(ctx, "btc-usd")
		require.Error(t, err)
		assert.Nil(t, balance)
	})
}
