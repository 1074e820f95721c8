package kernel

import (
	"errors"
	"fmt"

	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPriceIsNotConstructed is returned when validating a Price built as a literal.
var ErrPriceIsNotConstructed = errors.New("price must be created via NewPrice, NewPriceFromString or ZeroPrice")

// PriceScale is the number of decimal places a price may carry.
const PriceScale = 2

// MaxPriceAmount is the largest price that fits the numeric(12,2) cost column.
var MaxPriceAmount = decimal.RequireFromString("9999999999.99")

// Price is a non-negative, currency-agnostic decimal amount. Prices compare
// by value, so 2, 2.0 and 2.00 are equal.
type Price struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewPrice validates that amount lies in [0..MaxPriceAmount] with at most
// PriceScale decimal places.
func NewPrice(amount decimal.Decimal) (Price, error) {
	p := Price{guard: guard.NewConstructorGuard()}
	if err := p.setAmount(amount); err != nil {
		return Price{}, err
	}
	return p, nil
}

// NewPriceFromString parses a decimal literal such as "4.99".
func NewPriceFromString(s string) (Price, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewPrice(amount)
}

// ZeroPrice is the price of a free delivery mode.
func ZeroPrice() Price {
	return Price{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// IsFree reports whether the amount is exactly zero.
func (p Price) IsFree() bool {
	return p.amount.IsZero()
}

// Compare returns -1, 0 or 1 as p is lower than, equal to or higher than other.
func (p Price) Compare(other Price) int {
	return p.amount.Cmp(other.amount)
}

func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

func (p Price) String() string {
	return p.amount.String()
}

func (p *Price) setAmount(amount decimal.Decimal) error {
	switch {
	case amount.IsNegative():
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"price", amount.String(), "0", MaxPriceAmount.String(),
			fmt.Errorf("%s is negative", amount.String()),
		)
	case amount.GreaterThan(MaxPriceAmount):
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"price", amount.String(), "0", MaxPriceAmount.String(),
			fmt.Errorf("%s exceeds %s", amount.String(), MaxPriceAmount.String()),
		)
	case !amount.Equal(amount.Round(PriceScale)):
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"price", amount.String(), "0", MaxPriceAmount.String(),
			fmt.Errorf("%s has more than %d decimal places", amount.String(), PriceScale),
		)
	}
	p.amount = amount
	return nil
}
