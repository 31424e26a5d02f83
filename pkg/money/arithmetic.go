package money

import (
	"github.com/amirasaad/toolkit/pkg/apperrors"
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

func (m Money) mustMatch(action string, other Money) error {
	if !m.IsSameCurrency(other) {
		return apperrors.CurrencyMismatch(action, m.currency.String(), other.currency.String())
	}
	return nil
}

// Add returns the sum of m and other.
// Invariants enforced:
//   - Currencies must match.
func (m Money) Add(other Money) (Money, error) {
	if err := m.mustMatch("add", other); err != nil {
		return Money{}, err
	}
	return newMoney(m.amount.Add(other.amount), m.currency), nil
}

// Subtract returns m minus other. The result can be negative.
// Invariants enforced:
//   - Currencies must match.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.mustMatch("subtract", other); err != nil {
		return Money{}, err
	}
	return newMoney(m.amount.Sub(other.amount), m.currency), nil
}

// AddAmount adds a raw decimal in the currency of m.
func (m Money) AddAmount(d decimal.Decimal) Money {
	return newMoney(m.amount.Add(d), m.currency)
}

// SubtractAmount subtracts a raw decimal in the currency of m.
func (m Money) SubtractAmount(d decimal.Decimal) Money {
	return newMoney(m.amount.Sub(d), m.currency)
}

// Multiply scales m by factor, rounding half to even.
func (m Money) Multiply(factor decimal.Decimal) Money {
	return newMoney(m.amount.Mul(factor), m.currency)
}

// MultiplyInt scales m by an integer factor.
func (m Money) MultiplyInt(factor int64) Money {
	return m.Multiply(decimal.NewFromInt(factor))
}

// Divide divides m by divisor, rounding half to even at the currency's
// digits. The quotient is exact before rounding, so non-terminating
// expansions such as 10/3 are handled.
func (m Money) Divide(divisor decimal.Decimal) (Money, error) {
	if divisor.IsZero() {
		return Money{}, apperrors.Arithmetic("divide", "division by zero")
	}
	places := digits(m.currency)
	q, r := m.amount.QuoRem(divisor, places)
	if r.IsZero() {
		return newMoney(q, m.currency), nil
	}

	unit := decimal.New(1, -places)
	cmp := r.Abs().Mul(two).Cmp(divisor.Abs().Mul(unit))
	odd := q.Shift(places).BigInt().Bit(0) == 1
	if cmp > 0 || (cmp == 0 && odd) {
		if m.amount.Sign()*divisor.Sign() < 0 {
			unit = unit.Neg()
		}
		q = q.Add(unit)
	}
	return newMoney(q, m.currency), nil
}

// Negate flips the sign of m.
func (m Money) Negate() Money {
	return newMoney(m.amount.Neg(), m.currency)
}

// Abs returns the absolute value of m.
func (m Money) Abs() Money {
	return newMoney(m.amount.Abs(), m.currency)
}

// AbsoluteValue is an alias of Abs.
func (m Money) AbsoluteValue() Money {
	return m.Abs()
}

// Increment adds one major unit.
func (m Money) Increment() Money {
	return m.AddAmount(one)
}

// Decrement subtracts one major unit.
func (m Money) Decrement() Money {
	return m.SubtractAmount(one)
}

// Ceil rounds m up to a whole major unit.
func (m Money) Ceil() Money {
	return newMoney(m.amount.Ceil(), m.currency)
}

// Floor rounds m down to a whole major unit.
func (m Money) Floor() Money {
	return newMoney(m.amount.Floor(), m.currency)
}

// Round rounds m to a whole major unit, half to even.
func (m Money) Round() Money {
	return newMoney(m.amount.RoundBank(0), m.currency)
}

// WithDiscountOf returns m reduced by percentage percent.
func (m Money) WithDiscountOf(percentage decimal.Decimal) Money {
	return newMoney(m.amount.Sub(m.amount.Mul(percentage).Div(hundred)), m.currency)
}

// Allocate splits m into parts proportional to ratios. The parts always sum
// to m; leftover minor units go to the first parts in order.
func (m Money) Allocate(ratios ...int) ([]Money, error) {
	if len(ratios) == 0 {
		return nil, apperrors.RequiredParameter("ratios", "[]int")
	}
	var sum int64
	for _, r := range ratios {
		if r < 0 {
			return nil, apperrors.InvalidParameter("ratios", "non-negative ratios", r)
		}
		sum += int64(r)
	}
	if sum == 0 {
		return nil, apperrors.InvalidParameter("ratios", "a positive total", sum)
	}

	places := digits(m.currency)
	total := m.amount.Shift(places)
	total = total.Truncate(0)
	divisor := decimal.NewFromInt(sum)

	shares := make([]decimal.Decimal, len(ratios))
	left := total
	for i, r := range ratios {
		shares[i], _ = total.Mul(decimal.NewFromInt(int64(r))).QuoRem(divisor, 0)
		left = left.Sub(shares[i])
	}

	step := decimal.NewFromInt(int64(left.Sign()))
	for i := 0; !left.IsZero(); i = (i + 1) % len(shares) {
		if ratios[i] == 0 {
			continue
		}
		shares[i] = shares[i].Add(step)
		left = left.Sub(step)
	}

	out := make([]Money, len(shares))
	for i, s := range shares {
		out[i] = newMoney(s.Shift(-places), m.currency)
	}
	return out, nil
}

// Compare returns -1, 0 or +1 as m is less than, equal to or greater than
// other.
// Invariants enforced:
//   - Currencies must match.
func (m Money) Compare(other Money) (int, error) {
	if err := m.mustMatch("compare", other); err != nil {
		return 0, err
	}
	return m.amount.Cmp(other.amount), nil
}

// GreaterThan reports whether m is greater than other.
func (m Money) GreaterThan(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c > 0, err
}

// LessThan reports whether m is less than other.
func (m Money) LessThan(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c < 0, err
}

// Equals reports whether m and other have the same currency and numerically
// equal amounts.
func (m Money) Equals(other Money) bool {
	return m.IsSameCurrency(other) && m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsNegative reports whether the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Sign returns -1, 0 or +1 according to the sign of the amount.
func (m Money) Sign() int {
	return m.amount.Sign()
}
