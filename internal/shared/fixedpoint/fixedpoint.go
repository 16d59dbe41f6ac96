// Package fixedpoint converts on-chain integer amounts, counted in the token's
// smallest unit, into decimal token amounts.
package fixedpoint

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// TokenDecimals is the number of fractional digits of an ERC-20 style token.
	TokenDecimals int32 = 18

	// DisplayPlaces is the precision member earnings are reported with.
	DisplayPlaces int32 = 4
)

var ErrInvalidHex = errors.New("invalid hex amount")

// FromHexUnits parses a hex integer, with or without the 0x prefix, and
// scales it down by 10^decimals. No rounding is applied.
func FromHexUnits(hex string, decimals int32) (decimal.Decimal, error) {
	digits := strings.TrimSpace(hex)
	digits = strings.TrimPrefix(strings.TrimPrefix(digits, "0x"), "0X")
	if digits == "" {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	units, ok := new(big.Int).SetString(digits, 16)
	if !ok || units.Sign() < 0 {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	return decimal.NewFromBigInt(units, -decimals), nil
}

// TokenAmount converts smallest units to a token amount rounded to DisplayPlaces.
func TokenAmount(hex string) (decimal.Decimal, error) {
	amount, err := FromHexUnits(hex, TokenDecimals)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Round(DisplayPlaces), nil
}

// Format renders d with exactly DisplayPlaces fractional digits.
func Format(d decimal.Decimal) string {
	return d.StringFixed(DisplayPlaces)
}
