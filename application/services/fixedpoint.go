package services

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// DefaultDisplayPlaces is the number of decimal places shown when
// formatting on-chain fixed-point values.
const DefaultDisplayPlaces = 6

// ToDecimalString formats a raw on-chain integer as a decimal string,
// treating the low `decimals` digits as fractional and rounding to
// `places` decimal places. The raw value never passes through a float:
// values far beyond 64 bits format digit-exact.
func ToDecimalString(raw *big.Int, decimals int, places int) string {
	if raw == nil {
		raw = new(big.Int)
	}
	if decimals < 0 {
		decimals = 0
	}
	if places < 0 {
		places = 0
	}
	value := decimal.NewFromBigInt(raw, -int32(decimals))
	return value.StringFixed(int32(places))
}

// ToFixedPointInteger converts a decimal value to its on-chain integer
// representation: round(value * multiplier), rounding half away from
// zero.
func ToFixedPointInteger(value decimal.Decimal, multiplier int64) *big.Int {
	scaled := value.Mul(decimal.NewFromInt(multiplier)).Round(0)
	return scaled.BigInt()
}
