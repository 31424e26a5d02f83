// Package currency provides the ISO 4217 currency catalogue.
//
// Every currency is a package variable named by its alphabetic code
// (currency.USD, currency.EUR, ...). Entries are immutable and built once at
// start-up together with the code and numeric-code indices.
package currency

import (
	"fmt"
	"strings"

	"github.com/amirasaad/toolkit/pkg/apperrors"
)

// Currency describes a single ISO 4217 currency.
type Currency struct {
	code            string
	name            string
	numericCode     string
	symbol          string
	pluralSymbol    string
	fractionalUnit  string
	fractionalUnits int
	digits          int
	countries       []string
}

// Code returns the three-letter alphabetic code (e.g. "USD").
func (c *Currency) Code() string { return c.code }

// Name returns the English display name.
func (c *Currency) Name() string { return c.name }

// NumericCode returns the zero-padded three-digit numeric code (e.g. "008").
func (c *Currency) NumericCode() string { return c.numericCode }

// Symbol returns the primary symbol, used for singular amounts.
func (c *Currency) Symbol() string { return c.symbol }

// PluralSymbol returns the secondary symbol, used for plural amounts. It
// equals Symbol for most currencies.
func (c *Currency) PluralSymbol() string { return c.pluralSymbol }

// FractionalUnit returns the name of the minor unit; ok is false when the
// currency has none.
func (c *Currency) FractionalUnit() (name string, ok bool) {
	return c.fractionalUnit, c.fractionalUnit != ""
}

// FractionalUnits returns the number of minor units per major unit.
func (c *Currency) FractionalUnits() int { return c.fractionalUnits }

// Digits returns the number of digits after the decimal point.
func (c *Currency) Digits() int { return c.digits }

// Countries returns the ISO 3166-1 alpha-2 codes of the regions using the
// currency.
func (c *Currency) Countries() []string {
	out := make([]string, len(c.countries))
	copy(out, c.countries)
	return out
}

// UsedIn reports whether the currency is used in region (case-insensitive).
func (c *Currency) UsedIn(region string) bool {
	for _, country := range c.countries {
		if strings.EqualFold(country, region) {
			return true
		}
	}
	return false
}

// String returns the alphabetic code.
func (c *Currency) String() string {
	if c == nil {
		return ""
	}
	return c.code
}

// MarshalText encodes the currency as its alphabetic code. There is no
// UnmarshalText: entries are shared, so decode codes with Of at the owning
// type instead.
func (c *Currency) MarshalText() ([]byte, error) {
	return []byte(c.code), nil
}

var (
	byCode    = make(map[string]*Currency, len(catalogue))
	byNumeric = make(map[string]*Currency, len(catalogue))
)

func init() {
	for _, c := range catalogue {
		byCode[c.code] = c
		byNumeric[c.numericCode] = c
	}
}

// All returns every catalogue entry ordered by code.
func All() []*Currency {
	out := make([]*Currency, len(catalogue))
	copy(out, catalogue)
	return out
}

// Of looks up a currency by alphabetic code, ignoring case and surrounding
// space, and falls back to the numeric code. It returns nil when neither
// matches.
func Of(code string) *Currency {
	code = strings.TrimSpace(code)
	if c, ok := byCode[strings.ToUpper(code)]; ok {
		return c
	}
	return OfNumeric(code)
}

// MustOf is like Of but panics when the code is unknown. It is meant for
// package-level initialisation with literal codes.
func MustOf(code string) *Currency {
	c := Of(code)
	if c == nil {
		panic(fmt.Sprintf("currency: unknown code %q", code))
	}
	return c
}

// OfNumeric looks up a currency by its exact three-digit numeric code.
func OfNumeric(code string) *Currency {
	return byNumeric[code]
}

// OfNumericInt looks up a currency by numeric code given as an integer.
// Codes outside 0..999 are a validation error; an unused code yields a nil
// currency and no error.
func OfNumericInt(code int) (*Currency, error) {
	if code < 0 || code > 999 {
		return nil, apperrors.InvalidParameter("code", "0..999", code)
	}
	return OfNumeric(fmt.Sprintf("%03d", code)), nil
}
