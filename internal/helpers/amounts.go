package helpers

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// ValidateAmount rejects zero, negative and non-finite human amounts.
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("amount must be a finite number")
	}
	if amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

// ToSmallestUnit converts a human readable amount into the token's base units,
// truncating anything finer than the token precision.
func ToSmallestUnit(amount float64, decimals int32) (*big.Int, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	units := decimal.NewFromFloat(amount).Shift(decimals).Truncate(0)
	if !units.IsPositive() {
		return nil, fmt.Errorf("amount %v is below the smallest unit for %d decimals", amount, decimals)
	}
	return units.BigInt(), nil
}

// FromSmallestUnit converts base units back into a human readable amount.
func FromSmallestUnit(units *big.Int, decimals int32) float64 {
	if units == nil {
		return 0
	}
	return decimal.NewFromBigInt(units, -decimals).InexactFloat64()
}

// ParseSmallestUnit parses a base-10 integer string (as returned by HTTP APIs) into base units.
func ParseSmallestUnit(s string) (*big.Int, error) {
	value, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer amount %q", s)
	}
	return value, nil
}

// PricePerToken divides the USDC proceeds by the input amount.
func PricePerToken(usdcAmount, inputAmount float64) float64 {
	if inputAmount == 0 {
		return 0
	}
	return decimal.NewFromFloat(usdcAmount).Div(decimal.NewFromFloat(inputAmount)).InexactFloat64()
}

// MulPrice multiplies an amount by a unit price with decimal precision.
func MulPrice(amount, price float64) float64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(price)).InexactFloat64()
}
