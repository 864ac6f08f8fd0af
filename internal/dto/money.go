package dto

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/pupuledger/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// ToCents converts a Pūpū amount with at most two decimals into cents.
func ToCents(amount decimal.Decimal) (int64, error) {
	if !amount.IsPositive() {
		return 0, domain.ErrInvalidAmount
	}
	cents := amount.Mul(hundred)
	if !cents.IsInteger() || !cents.LessThanOrEqual(decimal.NewFromInt(1<<53)) {
		return 0, domain.ErrInvalidAmount
	}
	return cents.IntPart(), nil
}

// FromCents renders cents as a two decimal Pūpū amount.
func FromCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
