package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxAmount is the largest monetary amount any statement field may carry.
var MaxAmount = decimal.RequireFromString("999999999999.99")

// Money is an immutable rupiah amount. Cooperative statements are filed in
// IDR only, so the type carries no currency discriminator; all operations
// return new instances.
type Money struct {
	amount decimal.Decimal
}

// NewIDR wraps a decimal amount as rupiah
func NewIDR(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// NewIDRFromString parses a decimal string into rupiah
func NewIDRFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount string: %w", err)
	}
	return Money{amount: d}, nil
}

// ZeroIDR returns a zero rupiah amount
func ZeroIDR() Money {
	return Money{}
}

// Amount returns the underlying decimal
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// IsZero returns true if the amount is zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative returns true if the amount is negative
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// ExceedsCap returns true if the absolute amount exceeds MaxAmount
func (m Money) ExceedsCap() bool {
	return m.amount.Abs().GreaterThan(MaxAmount)
}

// Add returns the sum of both amounts
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of both amounts
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Neg returns the amount with the sign reversed
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg()}
}

// PercentOf returns the given percentage of the amount
func (m Money) PercentOf(percent decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(percent).Div(decimal.NewFromInt(100))}
}

// Equal returns true if both amounts are numerically equal
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two decimal places and the IDR suffix
func (m Money) String() string {
	return fmt.Sprintf("%s IDR", m.amount.StringFixed(2))
}

// StringFixed renders the bare amount with fixed decimal places
func (m Money) StringFixed(places int32) string {
	return m.amount.StringFixed(places)
}
