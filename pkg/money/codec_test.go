package money_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/toolkit/pkg/apperrors"
	"github.com/amirasaad/toolkit/pkg/currency"
	"github.com/amirasaad/toolkit/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_SQL(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck

	balance := money.NewFromMinor(1050, currency.USD)

	mock.ExpectExec("INSERT INTO balances").
		WithArgs("USD 10.50").
		WillReturnResult(sqlmock.NewResult(1, 1))
	_, err = db.Exec("INSERT INTO balances (amount) VALUES (?)", balance)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT amount FROM balances").
		WillReturnRows(sqlmock.NewRows([]string{"amount"}).AddRow([]byte("JPY 1200")))
	var got money.Money
	require.NoError(t, db.QueryRow("SELECT amount FROM balances WHERE id = ?", 1).Scan(&got))
	assert.Equal(t, "JPY 1200", got.String())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMoney_ScanRejects(t *testing.T) {
	var m money.Money
	assert.ErrorIs(t, m.Scan(nil), apperrors.ErrRequiredParameter)
	assert.ErrorIs(t, m.Scan(42), apperrors.ErrInvalidParameter)
	assert.ErrorIs(t, m.Scan("USD"), apperrors.ErrMalformed)
}
