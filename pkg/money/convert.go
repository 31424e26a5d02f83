package money

import (
	"context"
	"time"

	"github.com/amirasaad/toolkit/pkg/apperrors"
	"github.com/amirasaad/toolkit/pkg/currency"
	"github.com/shopspring/decimal"
)

// ConversionInfo is what a Converter reports for a single conversion.
type ConversionInfo struct {
	// Amount is the converted amount in the target currency.
	Amount decimal.Decimal
	// Rate is the exchange rate applied.
	Rate decimal.Decimal
	// LastUpdated is when the rate source last refreshed its rates.
	LastUpdated time.Time
}

// Converter converts amounts between currencies.
type Converter interface {
	Convert(ctx context.Context, amount decimal.Decimal, from, to *currency.Currency) (*ConversionInfo, error)
}

// LastUpdater is implemented by converters that refresh rates on a known
// schedule. Money.Convert uses it to date same-currency conversions, which
// never reach Convert.
type LastUpdater interface {
	LastUpdate(now time.Time) time.Time
}

// Conversion is the result of Money.Convert. LastUpdated is zero for a
// same-currency conversion when the converter is not a LastUpdater.
type Conversion struct {
	Money       Money
	Rate        decimal.Decimal
	LastUpdated time.Time
}

// Convert converts m into the target currency using conv. Every failure is
// reported as a currency conversion error naming both currencies.
func (m Money) Convert(ctx context.Context, conv Converter, to *currency.Currency) (Conversion, error) {
	from := m.currency.String()
	if to == nil {
		return Conversion{}, apperrors.CurrencyConversion(from, "", apperrors.RequiredParameter("to", "*currency.Currency"))
	}
	if conv == nil {
		return Conversion{}, apperrors.CurrencyConversion(from, to.Code(), apperrors.RequiredParameter("conv", "money.Converter"))
	}
	if m.IsSameCurrency(Money{currency: to}) {
		res := Conversion{Money: m, Rate: one}
		if lu, ok := conv.(LastUpdater); ok {
			res.LastUpdated = lu.LastUpdate(time.Now())
		}
		return res, nil
	}

	info, err := conv.Convert(ctx, m.amount, m.currency, to)
	if err != nil {
		return Conversion{}, apperrors.CurrencyConversion(from, to.Code(), err)
	}
	if info == nil {
		return Conversion{}, apperrors.CurrencyConversion(from, to.Code(), apperrors.Internal(nil,
			apperrors.WithDetail("converter returned no result")))
	}
	return Conversion{
		Money:       newMoney(info.Amount, to),
		Rate:        info.Rate,
		LastUpdated: info.LastUpdated,
	}, nil
}
