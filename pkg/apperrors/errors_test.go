package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amirasaad/toolkit/pkg/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type account struct{}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		err  *apperrors.Error
		want string
	}{
		{"required field", apperrors.RequiredField(&account{}, "Owner"), `required field "Owner" of account is missing`},
		{"required parameter", apperrors.RequiredParameter("amount", "decimal.Decimal"), `required parameter "amount" (decimal.Decimal) is missing`},
		{"invalid parameter", apperrors.InvalidParameter("code", "0..999", 1000), `invalid parameter "code": expected 0..999, got 1000`},
		{"not found", apperrors.NotFound("Currency", "XYZ"), `Currency "XYZ" not found`},
		{"already exists", apperrors.AlreadyExists(account{}, 7), `account "7" already exists`},
		{"conflict", apperrors.Conflict("Ledger", "closed"), `conflict on Ledger: closed`},
		{"permissions", apperrors.InsufficientPermissions("bob", "delete accounts"), `"bob" lacks permission to delete accounts`},
		{"mismatch", apperrors.CurrencyMismatch("add", "USD", "EUR"), "cannot add different currencies: USD and EUR"},
		{"conversion", apperrors.CurrencyConversion("USD", "EUR", errors.New("boom")), "cannot convert USD to EUR: boom"},
		{"malformed", apperrors.Malformed("jwt", "abc", nil), `malformed jwt "abc"`},
		{"arithmetic", apperrors.Arithmetic("divide", "division by zero"), "arithmetic error in divide: division by zero"},
		{"http", apperrors.HTTP("GET", "http://x", 503), "GET http://x returned status 503 Service Unavailable"},
		{"external", apperrors.ExternalServiceHTTP("rates", 502, nil), `external service "rates" returned status 502`},
		{"external no response", apperrors.ExternalServiceHTTP("rates", 0, errors.New("dial")), `external service "rates" request failed: dial`},
		{"detail", apperrors.NotFound("Currency", "XYZ", apperrors.WithDetail("numeric")), `Currency "XYZ" not found (numeric)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.Render(tt.err))
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorIs(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("convert: %w", apperrors.CurrencyConversion("USD", "EUR", cause))

	assert.ErrorIs(t, err, apperrors.ErrCurrencyConversion)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, apperrors.ErrCurrencyMismatch)

	kind, ok := apperrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindCurrencyConversion, kind)

	assert.ErrorIs(t, apperrors.InvalidParameter("x", 1, 2), apperrors.ErrValidation)
	assert.ErrorIs(t, apperrors.RequiredField("T", "x"), apperrors.ErrValidation)
	assert.NotErrorIs(t, apperrors.NotFound("T", "x"), apperrors.ErrValidation)
}

func TestInternalCode(t *testing.T) {
	err := apperrors.RequiredField("User", "email", apperrors.WithCode("USR-001"))
	assert.Equal(t, `USR-001 |# required field "email" of User is missing`, err.Error())

	code, ok := apperrors.CodeOf(fmt.Errorf("signup: %w", err))
	require.True(t, ok)
	assert.Equal(t, "USR-001", code)

	// flattened to a plain string
	code, rest, ok := apperrors.ExtractCode(err.Error())
	require.True(t, ok)
	assert.Equal(t, "USR-001", code)
	assert.Equal(t, `required field "email" of User is missing`, rest)

	_, rest, ok = apperrors.ExtractCode("no code here")
	assert.False(t, ok)
	assert.Equal(t, "no code here", rest)

	_, ok = apperrors.CodeOf(errors.New("plain"))
	assert.False(t, ok)
	_, ok = apperrors.CodeOf(nil)
	assert.False(t, ok)
}

type signup struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required"`
	Age   int    `validate:"gte=18"`
}

func TestFromValidation(t *testing.T) {
	err := validator.New().Struct(signup{Email: "nope", Age: 12})
	require.Error(t, err)

	converted := apperrors.FromValidation(signup{}, err)
	require.Error(t, converted)
	assert.ErrorIs(t, converted, apperrors.ErrValidation)
	assert.ErrorIs(t, converted, apperrors.ErrRequiredField)
	assert.ErrorIs(t, converted, apperrors.ErrInvalidParameter)
	assert.Contains(t, converted.Error(), `required field "Name" of signup is missing`)
	assert.Contains(t, converted.Error(), `invalid parameter "Email": expected email, got nope`)
	assert.Contains(t, converted.Error(), `invalid parameter "Age": expected gte=18, got 12`)

	assert.NoError(t, apperrors.FromValidation(signup{}, nil))
	assert.ErrorIs(t, apperrors.FromValidation(signup{}, errors.New("x")), apperrors.ErrInternal)
}
