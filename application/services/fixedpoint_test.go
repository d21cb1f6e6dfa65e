package services

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFixedPointInteger(t *testing.T) {
	t.Run("scales by multiplier", func(t *testing.T) {
		value := decimal.RequireFromString("42.5")

		result := ToFixedPointInteger(value, 100)
		assert.Equal(t, "4250", result.String())
	})

	t.Run("rounds half away from zero", func(t *testing.T) {
		up := ToFixedPointInteger(decimal.RequireFromString("1.005"), 100)
		assert.Equal(t, "101", up.String())

		down := ToFixedPointInteger(decimal.RequireFromString("-1.005"), 100)
		assert.Equal(t, "-101", down.String())
	})

	t.Run("truncating fractions round correctly", func(t *testing.T) {
		result := ToFixedPointInteger(decimal.RequireFromString("1.004"), 100)
		assert.Equal(t, "100", result.String())
	})

	t.Run("multiplier one keeps integer part", func(t *testing.T) {
		result := ToFixedPointInteger(decimal.RequireFromString("99.4"), 1)
		assert.Equal(t, "99", result.String())
	})

	t.Run("zero value", func(t *testing.T) {
		result := ToFixedPointInteger(decimal.Zero, 100)
		assert.Equal(t, "0", result.String())
	})

	t.Run("large value beyond float64 precision", func(t *testing.T) {
		value := decimal.RequireFromString("123456789012345678901234567.89")

		result := ToFixedPointInteger(value, 100)
		assert.Equal(t, "12345678901234567890123456789", result.String())
	})
}

func TestToDecimalString(t *testing.T) {
	t.Run("two fractional digits", func(t *testing.T) {
		result := ToDecimalString(big.NewInt(300000), 2, 2)
		assert.Equal(t, "3000.00", result)
	})

	t.Run("eighteen fractional digits rounds to places", func(t *testing.T) {
		result := ToDecimalString(big.NewInt(300000), 18, 6)
		assert.Equal(t, "0.000000", result)
	})

	t.Run("wei to native units", func(t *testing.T) {
		// 1.5 native units in wei.
		wei, ok := new(big.Int).SetString("1500000000000000000", 10)
		require.True(t, ok)

		result := ToDecimalString(wei, 18, 6)
		assert.Equal(t, "1.500000", result)
	})

	t.Run("value beyond 64 bits formats digit-exact", func(t *testing.T) {
		raw, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
		require.True(t, ok)

		result := ToDecimalString(raw, 2, 2)
		assert.Equal(t, "1234567890123456789012345678.90", result)
	})

	t.Run("nil raw treated as zero", func(t *testing.T) {
		result := ToDecimalString(nil, 2, 2)
		assert.Equal(t, "0.00", result)
	})

	t.Run("negative arguments clamped", func(t *testing.T) {
		result := ToDecimalString(big.NewInt(42), -1, -1)
		assert.Equal(t, "42", result)
	})
}

func TestFixedPointRoundTrip(t *testing.T) {
	// Converting to fixed point and formatting back must reproduce the
	// original value for anything representable at the multiplier's
	// precision.
	cases := []string{"0", "1", "42.5", "1234.56", "0.01", "-7.25"}
	for _, raw := range cases {
		value := decimal.RequireFromString(raw)
		fixed := ToFixedPointInteger(value, 100)
		back := ToDecimalString(fixed, 2, 2)
		assert.Equal(t, value.StringFixed(2), back, "round trip of %s", raw)
	}
}
