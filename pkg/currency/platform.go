package currency

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Unit converts c to the golang.org/x/text currency unit of the same code.
func (c *Currency) Unit() (currency.Unit, error) {
	return currency.ParseISO(c.code)
}

// FromUnit returns the catalogue entry for an x/text currency unit, or nil
// when the catalogue does not carry it.
func FromUnit(u currency.Unit) *Currency {
	return byCode[u.String()]
}

// LocalSymbol returns the CLDR symbol of c for the given locale (for example
// "US$" rather than "$" in some English locales). It falls back to Symbol
// when CLDR has no data for the currency.
func (c *Currency) LocalSymbol(tag language.Tag) string {
	unit, err := c.Unit()
	if err != nil {
		return c.symbol
	}
	sym := message.NewPrinter(tag).Sprint(currency.Symbol(unit))
	if sym == "" {
		return c.symbol
	}
	return sym
}

// localNames holds display names for the languages the toolkit ships
// translations for, keyed by base language then code.
var localNames = map[string]map[string]string{
	"de": {
		"CHF": "Schweizer Franken",
		"EUR": "Euro",
		"GBP": "Britisches Pfund",
		"JPY": "Japanischer Yen",
		"USD": "US-Dollar",
	},
	"es": {
		"CHF": "franco suizo",
		"EUR": "euro",
		"GBP": "libra esterlina",
		"JPY": "yen",
		"MXN": "peso mexicano",
		"USD": "dólar estadounidense",
	},
	"fr": {
		"CHF": "franc suisse",
		"EUR": "euro",
		"GBP": "livre sterling",
		"JPY": "yen japonais",
		"USD": "dollar des États-Unis",
	},
}

// LocalName returns the display name of c in the language of tag, falling
// back to the English Name.
func (c *Currency) LocalName(tag language.Tag) string {
	base, _ := tag.Base()
	if names, ok := localNames[base.String()]; ok {
		if name, ok := names[c.code]; ok {
			return name
		}
	}
	return c.name
}
