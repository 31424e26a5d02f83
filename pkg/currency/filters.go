package currency

import "strings"

func filter(match func(*Currency) bool) []*Currency {
	var out []*Currency
	for _, c := range catalogue {
		if match(c) {
			out = append(out, c)
		}
	}
	return out
}

// ByName returns the currencies whose display name equals name, ignoring case.
func ByName(name string) []*Currency {
	return filter(func(c *Currency) bool { return strings.EqualFold(c.name, name) })
}

// BySymbol returns the currencies using symbol as primary or plural symbol.
// A symbol such as "$" is shared by many currencies.
func BySymbol(symbol string) []*Currency {
	return filter(func(c *Currency) bool { return c.symbol == symbol || c.pluralSymbol == symbol })
}

// ByFractionalUnit returns the currencies whose minor unit is called name,
// ignoring case.
func ByFractionalUnit(name string) []*Currency {
	return filter(func(c *Currency) bool {
		return c.fractionalUnit != "" && strings.EqualFold(c.fractionalUnit, name)
	})
}

// ByNumberOfFractionalUnits returns the currencies with n minor units per
// major unit.
func ByNumberOfFractionalUnits(n int) []*Currency {
	return filter(func(c *Currency) bool { return c.fractionalUnits == n })
}

// ByDigitsAfterDecimalPoint returns the currencies with the given number of
// decimal digits.
func ByDigitsAfterDecimalPoint(digits int) []*Currency {
	return filter(func(c *Currency) bool { return c.digits == digits })
}

// ByCountry returns the currencies used in region, an ISO 3166-1 alpha-2
// code.
func ByCountry(region string) []*Currency {
	return filter(func(c *Currency) bool { return c.UsedIn(region) })
}

// ByCountries returns the currencies used in any of the regions, each
// currency at most once, in catalogue order.
func ByCountries(regions ...string) []*Currency {
	return filter(func(c *Currency) bool {
		for _, r := range regions {
			if c.UsedIn(r) {
				return true
			}
		}
		return false
	})
}
