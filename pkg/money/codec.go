package money

import (
	"database/sql/driver"
	"encoding/json"
	"strings"

	"github.com/amirasaad/toolkit/pkg/apperrors"
	"github.com/amirasaad/toolkit/pkg/currency"
	"github.com/shopspring/decimal"
)

// Parse reads Money in the "<code> <amount>" form produced by String.
func Parse(s string) (Money, error) {
	return ParseWithOrder(s, Before)
}

// ParseWithOrder reads Money from two whitespace-separated tokens, the
// currency code placed as given by order. The code may also be numeric.
func ParseWithOrder(s string, order Position) (Money, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Money{}, apperrors.Malformed("money", s, nil,
			apperrors.WithDetail("expected a currency code and an amount"))
	}
	code, amount := fields[0], fields[1]
	if order == After {
		code, amount = amount, code
	}

	c := currency.Of(code)
	if c == nil {
		return Money{}, apperrors.NotFound("Currency", code)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, apperrors.Malformed("money", s, err)
	}
	return newMoney(d, c), nil
}

// MustParse is like Parse but panics on error. It is meant for literals.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic("money.MustParse(" + s + "): " + err.Error())
	}
	return m
}

// MarshalJSON encodes m as a JSON string, e.g. "USD 10.00".
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes the string form written by MarshalJSON.
func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return apperrors.Malformed("money", string(data), err)
	}
	return m.UnmarshalText([]byte(s))
}

// MarshalText implements encoding.TextMarshaler.
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Money) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Value implements driver.Valuer, storing m in its string form.
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

// Scan implements sql.Scanner for values written by Value.
func (m *Money) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return m.UnmarshalText([]byte(v))
	case []byte:
		return m.UnmarshalText(v)
	case nil:
		return apperrors.RequiredParameter("src", "string")
	default:
		return apperrors.InvalidParameter("src", "string or []byte", apperrors.TypeName(v))
	}
}
