package money_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirasaad/toolkit/pkg/apperrors"
	"github.com/amirasaad/toolkit/pkg/currency"
	"github.com/amirasaad/toolkit/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockConverter struct {
	mock.Mock
}

func (m *mockConverter) Convert(
	ctx context.Context,
	amount decimal.Decimal,
	from, to *currency.Currency,
) (*money.ConversionInfo, error) {
	args := m.Called(ctx, amount, from, to)
	info, _ := args.Get(0).(*money.ConversionInfo)
	return info, args.Error(1)
}

type scheduledConverter struct {
	mockConverter
	updated time.Time
}

func (s *scheduledConverter) LastUpdate(time.Time) time.Time { return s.updated }

func decimalEq(want string) any {
	return mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.RequireFromString(want))
	})
}

func TestMoney_Convert(t *testing.T) {
	ctx := context.Background()
	updated := time.Date(2024, 3, 1, 16, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		conv := new(mockConverter)
		conv.On("Convert", ctx, decimalEq("10"), currency.USD, currency.EUR).
			Return(&money.ConversionInfo{
				Amount:      decimal.RequireFromString("9.2345"),
				Rate:        decimal.RequireFromString("0.92345"),
				LastUpdated: updated,
			}, nil).Once()

		got, err := money.NewFromInt(10, currency.USD).Convert(ctx, conv, currency.EUR)
		require.NoError(t, err)
		assert.Equal(t, "EUR 9.23", got.Money.String())
		assert.Equal(t, "0.92345", got.Rate.String())
		assert.Equal(t, updated, got.LastUpdated)
		conv.AssertExpectations(t)
	})

	t.Run("same currency skips the converter", func(t *testing.T) {
		conv := new(mockConverter)
		got, err := money.NewFromInt(10, currency.USD).Convert(ctx, conv, currency.USD)
		require.NoError(t, err)
		assert.Equal(t, "USD 10.00", got.Money.String())
		assert.True(t, got.Rate.Equal(decimal.NewFromInt(1)))
		assert.True(t, got.LastUpdated.IsZero())
		conv.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("same currency is dated by the converter schedule", func(t *testing.T) {
		conv := &scheduledConverter{updated: updated}
		got, err := money.NewFromInt(10, currency.USD).Convert(ctx, conv, currency.USD)
		require.NoError(t, err)
		assert.Equal(t, updated, got.LastUpdated)
		conv.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("failure names both currencies", func(t *testing.T) {
		cause := errors.New("service unavailable")
		conv := new(mockConverter)
		conv.On("Convert", mock.Anything, mock.Anything, currency.USD, currency.JPY).
			Return(nil, cause).Once()

		_, err := money.NewFromInt(10, currency.USD).Convert(ctx, conv, currency.JPY)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrCurrencyConversion)
		assert.ErrorIs(t, err, cause)
		assert.EqualError(t, err, "cannot convert USD to JPY: service unavailable")
	})

	t.Run("nil target", func(t *testing.T) {
		_, err := money.NewFromInt(10, currency.USD).Convert(ctx, new(mockConverter), nil)
		assert.ErrorIs(t, err, apperrors.ErrCurrencyConversion)
		assert.ErrorIs(t, err, apperrors.ErrRequiredParameter)
	})
}
