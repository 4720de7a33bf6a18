package kernel

import (
	"fmt"

	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// moneyPrecision is the number of decimal places kept by every Money value.
// Amounts are rounded half-up to this precision at construction and after
// every arithmetic operation so that equal inputs always produce
// bit-identical amounts.
const moneyPrecision = 2

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created using NewMoney, MoneyFromDecimal, or ZeroMoney to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromDecimal, or ZeroMoney constructors")

// Money represents a non-negative currency amount with two decimal places.
// Money is an immutable value object; arithmetic methods return new values.
// The zero value of Money is invalid and will fail validation - use
// constructors to create instances.
//
// Example:
//
//	price, err := kernel.NewMoney("12.50")
//	if err != nil {
//	    // Handle validation error
//	}
//	total := price.MulInt(3) // 37.50
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from its decimal string representation.
// The amount must parse as a decimal number and must not be negative.
// The value is rounded half-up to two decimal places.
func NewMoney(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return MoneyFromDecimal(d)
}

// MoneyFromDecimal creates a Money value from a decimal.Decimal.
// Negative amounts are rejected. The value is rounded half-up to two
// decimal places.
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s is negative", d.String()))
	}
	return Money{
		amount: d.Round(moneyPrecision),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// ZeroMoney returns a valid Money value of 0.00.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero.Round(moneyPrecision),
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate checks if the Money value is properly constructed.
// Returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount formatted with two decimal places, e.g. "12.50".
func (m Money) String() string {
	return m.amount.StringFixed(moneyPrecision)
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two Money values by amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount).Round(moneyPrecision),
		guard:  guard.NewConstructorGuard(),
	}
}

// MulInt returns the amount multiplied by an integer quantity,
// rounded half-up to two decimal places.
func (m Money) MulInt(quantity int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))).Round(moneyPrecision),
		guard:  guard.NewConstructorGuard(),
	}
}
