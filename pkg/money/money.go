// Package money provides functionality for handling monetary values.
//
// Money is a value object pairing a decimal amount with an ISO 4217 currency.
// Invariants:
//   - Amount is always scaled to exactly the currency's digits, rounded half to even.
//   - All binary operations between two Money values require matching currencies.
//   - Every operation returns a new value; nothing is mutated in place.
package money

import (
	"fmt"
	"math"

	"github.com/amirasaad/toolkit/pkg/apperrors"
	"github.com/amirasaad/toolkit/pkg/currency"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a specific currency.
type Money struct {
	amount   decimal.Decimal
	currency *currency.Currency
}

func newMoney(amount decimal.Decimal, c *currency.Currency) Money {
	return Money{amount: amount.RoundBank(digits(c)), currency: c}
}

func digits(c *currency.Currency) int32 {
	if c == nil {
		return 0
	}
	return int32(c.Digits())
}

// mustCurrency panics on a nil currency. Constructors without an error
// return treat it as a programming error, as the Must helpers do.
func mustCurrency(c *currency.Currency) *currency.Currency {
	if c == nil {
		panic("money: nil currency")
	}
	return c
}

// New creates Money from a decimal amount, rescaled to the currency's digits.
// It panics when c is nil.
func New(amount decimal.Decimal, c *currency.Currency) Money {
	return newMoney(amount, mustCurrency(c))
}

// NewFromInt creates Money from a whole number of major units. It panics when
// c is nil, as do NewFromFloat, NewFromMinor and Zero.
func NewFromInt(amount int64, c *currency.Currency) Money {
	return newMoney(decimal.NewFromInt(amount), mustCurrency(c))
}

// NewFromFloat creates Money from a float64 using its shortest decimal
// representation. Precision beyond what a float64 carries is lost; use
// NewFromString or New when the exact digits matter.
func NewFromFloat(amount float64, c *currency.Currency) Money {
	return newMoney(decimal.NewFromFloat(amount), mustCurrency(c))
}

// NewFromString creates Money from a decimal literal such as "19.995".
func NewFromString(amount string, c *currency.Currency) (Money, error) {
	if c == nil {
		return Money{}, apperrors.RequiredParameter("currency", "*currency.Currency")
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, apperrors.Malformed("amount", amount, err)
	}
	return newMoney(d, c), nil
}

// NewFromMinor creates Money from an amount in minor units (e.g. cents).
func NewFromMinor(units int64, c *currency.Currency) Money {
	return newMoney(decimal.New(units, -digits(mustCurrency(c))), c)
}

// Zero returns zero in the given currency.
func Zero(c *currency.Currency) Money {
	return newMoney(decimal.Zero, mustCurrency(c))
}

// Amount returns the decimal amount, scaled to the currency's digits.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency of m.
func (m Money) Currency() *currency.Currency {
	return m.currency
}

// IsSameCurrency reports whether m and other share a currency code.
func (m Money) IsSameCurrency(other Money) bool {
	return m.currency.String() == other.currency.String()
}

// MinorUnits returns the amount in minor units (e.g. cents for USD).
func (m Money) MinorUnits() (int64, error) {
	return exactInt(m.amount.Shift(digits(m.currency)), math.MinInt64, math.MaxInt64, "minor units")
}

// Int64 returns the amount as an int64. It fails when the amount has a
// fractional part or does not fit.
func (m Money) Int64() (int64, error) {
	return exactInt(m.amount, math.MinInt64, math.MaxInt64, "int64")
}

// Int32 is like Int64 for int32.
func (m Money) Int32() (int32, error) {
	v, err := exactInt(m.amount, math.MinInt32, math.MaxInt32, "int32")
	return int32(v), err
}

// Int16 is like Int64 for int16.
func (m Money) Int16() (int16, error) {
	v, err := exactInt(m.amount, math.MinInt16, math.MaxInt16, "int16")
	return int16(v), err
}

// Int8 is like Int64 for int8.
func (m Money) Int8() (int8, error) {
	v, err := exactInt(m.amount, math.MinInt8, math.MaxInt8, "int8")
	return int8(v), err
}

// Float64 returns the nearest float64 to the amount.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

func exactInt(d decimal.Decimal, lo, hi int64, target string) (int64, error) {
	if !d.IsInteger() {
		return 0, apperrors.Arithmetic("convert to "+target, fmt.Sprintf("%s has a fractional part", d))
	}
	b := d.BigInt()
	if !b.IsInt64() || b.Int64() < lo || b.Int64() > hi {
		return 0, apperrors.Arithmetic("convert to "+target, fmt.Sprintf("%s is out of range", d))
	}
	return b.Int64(), nil
}

// String returns "<code> <amount>", e.g. "USD 10.00".
func (m Money) String() string {
	return m.currency.String() + " " + m.amount.StringFixed(digits(m.currency))
}
