// Package money canonicalizes monetary amounts. Every amount stored in
// the ledger passes through Normalize first: two fractional digits,
// rounded half to even.
package money

import (
	"bankledger/internal/apperr"

	"github.com/shopspring/decimal"
)

const scale = 2

// Normalize validates and canonicalizes a raw amount. A nil or negative
// amount is rejected with InvalidAmount. Normalizing an already
// normalized value is a no-op.
func Normalize(raw *decimal.Decimal) (decimal.Decimal, error) {
	if raw == nil {
		return decimal.Decimal{}, apperr.New(apperr.InvalidAmount, "amount is required")
	}
	if raw.IsNegative() {
		return decimal.Decimal{}, apperr.New(apperr.InvalidAmount, "amount cannot be negative")
	}
	return raw.RoundBank(scale), nil
}
