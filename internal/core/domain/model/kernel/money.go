package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// currencyPattern requires a 3-letter uppercase ISO code such as USD or EUR.
var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
// Money must be created via NewMoney, ParseMoney or their Try variants.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney or ParseMoney")

// Money is a non-negative decimal amount paired with a currency code.
// It is an immutable value object; the zero value is invalid. The canonical
// textual form is "<amount with 2 decimals> <CODE>", e.g. "123.45 USD", and
// round-trips through ParseMoney.
//
// Arithmetic never rounds: amounts are decimals, and comparison with IsEqual
// is exact on the numeric value.
type Money struct {
	amount   decimal.Decimal
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney creates Money from an amount and a currency code. The amount must
// be non-negative; the currency is trimmed, upper-cased and must be a
// 3-letter code.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	m, ok := TryNewMoney(amount, currency)
	if !ok {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%s %s: amount must be >= 0 and currency a 3-letter uppercase code", amount, currency))
	}
	return m, nil
}

// TryNewMoney creates Money from components, reporting success via the
// boolean instead of an error.
func TryNewMoney(amount decimal.Decimal, currency string) (Money, bool) {
	if amount.IsNegative() {
		return Money{}, false
	}
	code := strings.ToUpper(strings.TrimSpace(currency))
	if !currencyPattern.MatchString(code) {
		return Money{}, false
	}
	return Money{amount: amount, currency: code, guard: guard.NewConstructorGuard()}, true
}

// ParseMoney parses a textual representation like "123.45 USD".
func ParseMoney(raw string) (Money, error) {
	m, ok := TryParseMoney(raw)
	if !ok {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%q is not of the form \"123.45 USD\"", raw))
	}
	return m, nil
}

// TryParseMoney parses a textual representation like "123.45 USD", reporting
// success via the boolean instead of an error.
func TryParseMoney(raw string) (Money, bool) {
	parts := strings.Fields(raw)
	if len(parts) != 2 {
		return Money{}, false
	}
	amount, err := decimal.NewFromString(parts[0])
	if err != nil {
		return Money{}, false
	}
	return TryNewMoney(amount, parts[1])
}

// Validate checks that the Money was produced by a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the 3-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// String returns the canonical textual form with two decimal places, the
// exact inverse of ParseMoney.
func (m Money) String() string {
	return m.amount.StringFixed(2) + " " + m.currency
}

// Times multiplies the amount by a quantity, keeping the currency. Used to
// derive a line total from a unit price.
func (m Money) Times(quantity int) Money {
	return Money{
		amount:   m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		currency: m.currency,
		guard:    guard.NewConstructorGuard(),
	}
}

// Add sums two amounts of the same currency. Returns an error when the
// currencies differ or either operand is not constructed.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}
	if m.currency != other.currency {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("cannot add %s to %s", other.currency, m.currency))
	}
	return Money{
		amount:   m.amount.Add(other.amount),
		currency: m.currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// IsEqual compares amount and currency. The amount comparison is exact on the
// numeric value, so "10.5 USD" equals "10.50 USD" and differs from "10.51 USD".
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}
