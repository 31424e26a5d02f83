package money

import (
	"strings"

	"golang.org/x/text/language"
)

// Style selects how the currency is labelled by Format.
type Style int

const (
	// StyleCode labels with the alphabetic code, e.g. "USD".
	StyleCode Style = iota
	// StyleName labels with the English display name.
	StyleName
	// StyleLocalizedName labels with the display name in the format locale.
	StyleLocalizedName
	// StyleNumericCode labels with the numeric code, e.g. "840".
	StyleNumericCode
	// StyleSymbol labels with the primary symbol.
	StyleSymbol
	// StyleSimplifiedSymbol uses the primary symbol when the amount is
	// exactly one and the plural symbol otherwise.
	StyleSimplifiedSymbol
	// StyleLocaleSymbol labels with the CLDR symbol for the format locale.
	StyleLocaleSymbol
)

// Position places the currency label relative to the amount.
type Position int

const (
	// Before puts the label ahead of the amount, e.g. "USD 10.00".
	Before Position = iota
	// After puts the label behind the amount, e.g. "10.00 USD".
	After
)

type formatOptions struct {
	style    Style
	position Position
	locale   language.Tag
}

// FormatOption configures Format.
type FormatOption func(*formatOptions)

// WithStyle sets the label style. The default is StyleCode.
func WithStyle(s Style) FormatOption {
	return func(o *formatOptions) { o.style = s }
}

// WithPosition sets where the label goes. The default is Before.
func WithPosition(p Position) FormatOption {
	return func(o *formatOptions) { o.position = p }
}

// WithLocale sets the locale used by the localized styles. The default is
// English.
func WithLocale(tag language.Tag) FormatOption {
	return func(o *formatOptions) { o.locale = tag }
}

// Format renders m with a configurable currency label. With no options it
// returns the same text as String.
func (m Money) Format(opts ...FormatOption) string {
	o := formatOptions{style: StyleCode, position: Before, locale: language.English}
	for _, opt := range opts {
		opt(&o)
	}

	amount := m.amount.StringFixed(digits(m.currency))
	label := m.label(o)
	if label == "" {
		return amount
	}
	if o.position == After {
		return amount + " " + label
	}
	return label + " " + amount
}

func (m Money) label(o formatOptions) string {
	c := m.currency
	if c == nil {
		return ""
	}
	switch o.style {
	case StyleName:
		return c.Name()
	case StyleLocalizedName:
		return c.LocalName(o.locale)
	case StyleNumericCode:
		return c.NumericCode()
	case StyleSymbol:
		return c.Symbol()
	case StyleSimplifiedSymbol:
		if m.amount.Equal(one) {
			return c.Symbol()
		}
		return c.PluralSymbol()
	case StyleLocaleSymbol:
		return c.LocalSymbol(o.locale)
	default:
		return c.Code()
	}
}

// ParseStyle maps a style name such as "symbol" or "localized-name" to a
// Style. ok is false for unknown names.
func ParseStyle(name string) (s Style, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "code":
		return StyleCode, true
	case "name":
		return StyleName, true
	case "localized-name":
		return StyleLocalizedName, true
	case "numeric", "numeric-code":
		return StyleNumericCode, true
	case "symbol":
		return StyleSymbol, true
	case "simplified-symbol":
		return StyleSimplifiedSymbol, true
	case "locale-symbol":
		return StyleLocaleSymbol, true
	}
	return StyleCode, false
}
