package epc

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	maxEuro = 999_999_999
	maxCent = 99
)

// Amount is a EUR amount between 0.01 and 999999999.99 with cent
// precision. The zero value is not a valid amount; construct one with
// NewAmount, AmountFromDecimal or ParseAmount.
type Amount struct {
	euro int64
	cent int64
}

// NewAmount builds an Amount from whole euros and cents.
func NewAmount(euro, cent int64) (Amount, error) {
	if euro < 0 || cent < 0 {
		return Amount{}, &InvalidAmountError{Reason: AmountReasonNegative}
	}
	if euro == 0 && cent == 0 {
		return Amount{}, &InvalidAmountError{Reason: AmountReasonZero}
	}
	if euro > maxEuro || cent > maxCent {
		return Amount{}, &InvalidAmountError{Reason: AmountReasonOverflow}
	}
	return Amount{euro: euro, cent: cent}, nil
}

// AmountFromDecimal converts a decimal EUR value, rejecting negatives,
// zero, sub-cent precision and values over the standard's maximum.
func AmountFromDecimal(d decimal.Decimal) (Amount, error) {
	if d.IsNegative() {
		return Amount{}, &InvalidAmountError{Reason: AmountReasonNegative}
	}
	if !d.Equal(d.Truncate(2)) {
		return Amount{}, &InvalidAmountError{Reason: AmountReasonPrecision}
	}
	if d.GreaterThan(decimal.New(maxEuro*100+maxCent, -2)) {
		return Amount{}, &InvalidAmountError{Reason: AmountReasonOverflow}
	}
	cents := d.Mul(decimal.NewFromInt(100)).IntPart()
	return NewAmount(cents/100, cents%100)
}

// ParseAmount parses a decimal string such as "12.50" or "7".
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, &InvalidAmountError{Reason: AmountReasonFormat}
	}
	return AmountFromDecimal(d)
}

// Euro returns the whole-euro part.
func (a Amount) Euro() int64 { return a.euro }

// Cent returns the cent part, 0-99.
func (a Amount) Cent() int64 { return a.cent }

// String renders the amount with exactly two decimals, e.g. "12.50".
func (a Amount) String() string {
	return fmt.Sprintf("%d.%02d", a.euro, a.cent)
}

// Decimal returns the amount as a decimal EUR value.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(a.euro*100+a.cent, -2)
}
