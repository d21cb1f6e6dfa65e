package usecases

import (
	"context"
	"strings"
	"testing"

	"theta-oracle-keeper/domain/entities"
	"theta-oracle-keeper/domain/errors"
	"theta-oracle-keeper/domain/interfaces"
	"theta-oracle-keeper/test/helpers"
	"theta-oracle-keeper/test/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterParams() interfaces.RegisterOracleParams {
	return interfaces.RegisterOracleParams{
		ID:                    "btc-usd",
		Description:           "BTC/USD spot price",
		APIEndpoint:           "https://api.example.com/price",
		DataPath:              "data.price",
		UpdateIntervalMinutes: 30,
		PriceMultiplier:       100,
	}
}

func TestRegisterOracleUseCase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockConfigStore(ctrl)
	mockWallet := mocks.NewMockDeriveWalletUseCase(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

	useCase := NewRegisterOracleUseCase(mockStore, mockWallet, mockLogger)
	ctx := context.Background()

	t.Run("successful registration", func(t *testing.T) {
		params := validRegisterParams()
		address := helpers.RandomAddress()

		mockStore.EXPECT().Get(ctx, "btc-usd").Return(nil, errors.NewDomainError(errors.ErrNotFound, "btc-usd"))
		mockWallet.EXPECT().Derive(ctx, "btc-usd").Return(&entities.WalletInfo{
			OracleID:       "btc-usd",
			DerivationPath: "btc-usd",
			Address:        address,
		}, nil)
		mockStore.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, cfg entities.OracleConfig) error {
				assert.Equal(t, "btc-usd", cfg.ID)
				assert.Equal(t, "btc-usd", cfg.DerivationPath)
				assert.Equal(t, address, cfg.Address)
				assert.True(t, cfg.IsActive)
				assert.Nil(t, cfg.LastUpdate)
				return nil
			})

		cfg, err := useCase.Execute(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, 30, cfg.UpdateIntervalMinutes)
		assert.Equal(t, int64(100), cfg.PriceMultiplier)
	})

	t.Run("defaults applied for zero interval and multiplier", func(t *testing.T) {
		params := validRegisterParams()
		params.UpdateIntervalMinutes = 0
		params.PriceMultiplier = 0

		mockStore.EXPECT().Get(ctx, "btc-usd").Return(nil, errors.NewDomainError(errors.ErrNotFound, "btc-usd"))
		mockWallet.EXPECT().Derive(ctx, "btc-usd").Return(&entities.WalletInfo{
			OracleID:       "btc-usd",
			DerivationPath: "btc-usd",
			Address:        helpers.RandomAddress(),
		}, nil)
		mockStore.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		cfg, err := useCase.Execute(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, entities.DefaultUpdateIntervalMinutes, cfg.UpdateIntervalMinutes)
		assert.Equal(t, int64(entities.DefaultPriceMultiplier), cfg.PriceMultiplier)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		params := validRegisterParams()
		existing := helpers.TestOracleConfig("btc-usd")

		mockStore.EXPECT().Get(ctx, "btc-usd").Return(&existing, nil)

		cfg, err := useCase.Execute(ctx, params)
		require.Error(t, err)
		assert.Nil(t, cfg)

		validErr, ok := err.(*errors.ValidationError)
		require.True(t, ok)
		assert.Contains(t, validErr.Fields, "id")
	})

	t.Run("wallet derivation failure aborts registration", func(t *testing.T) {
		params := validRegisterParams()

		mockStore.EXPECT().Get(ctx, "btc-usd").Return(nil, errors.NewDomainError(errors.ErrNotFound, "btc-usd"))
		mockWallet.EXPECT().Derive(ctx, "btc-usd").Return(nil, assert.AnError)

		cfg, err := useCase.Execute(ctx, params)
		require.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*interfaces.RegisterOracleParams)
			field  string
		}{
			{"bad id", func(p *interfaces.RegisterOracleParams) { p.ID = "Bad ID!" }, "id"},
			{"long description", func(p *interfaces.RegisterOracleParams) { p.Description = strings.Repeat("x", 201) }, "description"},
			{"relative endpoint", func(p *interfaces.RegisterOracleParams) { p.APIEndpoint = "/relative/path" }, "api_endpoint"},
			{"ftp endpoint", func(p *interfaces.RegisterOracleParams) { p.APIEndpoint = "ftp://example.com" }, "api_endpoint"},
			{"blank data path", func(p *interfaces.RegisterOracleParams) { p.DataPath = "   " }, "data_path"},
			{"interval too large", func(p *interfaces.RegisterOracleParams) { p.UpdateIntervalMinutes = 10081 }, "update_interval_minutes"},
			{"negative multiplier", func(p *interfaces.RegisterOracleParams) { p.PriceMultiplier = -1 }, "price_multiplier"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				params := validRegisterParams()
				tc.mutate(&params)

				cfg, err := useCase.Execute(ctx, params)
				require.Error(t, err)
				assert.Nil(t, cfg)

				validErr, ok := err.(*errors.ValidationError)
				require.True(t, ok)
				assert.Contains(t, validErr.Fields, tc.field)
			})
		}
	})
}
