package exchange_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/toolkit/pkg/apperrors"
	"github.com/amirasaad/toolkit/pkg/config"
	"github.com/amirasaad/toolkit/pkg/currency"
	"github.com/amirasaad/toolkit/pkg/exchange"
	"github.com/amirasaad/toolkit/pkg/logger"
	"github.com/amirasaad/toolkit/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ClientSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	client  *exchange.Client
	cet     *time.Location
	now     time.Time
}

func (s *ClientSuite) SetupTest() {
	var err error
	s.cet, err = time.LoadLocation("CET")
	s.Require().NoError(err)
	s.now = time.Date(2024, 3, 15, 17, 30, 0, 0, s.cet)

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handler(w, r)
	}))
	cfg := &config.Exchange{
		ApiUrl:      s.server.URL + "/v1/",
		HTTPTimeout: 5 * time.Second,
		RefreshHour: 16,
		RefreshZone: "CET",
	}
	s.client = exchange.New(cfg,
		exchange.WithLogger(logger.Discard()),
		exchange.WithClock(func() time.Time { return s.now }),
	)
}

func (s *ClientSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientSuite) TestConvert() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/v1/latest", r.URL.Path)
		s.Equal("USD", r.URL.Query().Get("base"))
		s.Equal("EUR", r.URL.Query().Get("symbols"))
		s.Equal("10", r.URL.Query().Get("amount"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"amount":10.0,"base":"USD","date":"2024-03-15","rates":{"EUR":9.2345}}`))
	}

	got, err := money.NewFromInt(10, currency.USD).Convert(context.Background(), s.client, currency.EUR)
	s.Require().NoError(err)
	s.Equal("EUR 9.23", got.Money.String())
	s.Equal("0.92345", got.Rate.String())
	s.True(time.Date(2024, 3, 15, 16, 0, 0, 0, s.cet).Equal(got.LastUpdated))
}

func (s *ClientSuite) TestConvertBeforeRefresh() {
	s.now = time.Date(2024, 3, 15, 8, 0, 0, 0, s.cet)
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"amount":5,"base":"EUR","date":"2024-03-14","rates":{"JPY":812.5}}`))
	}

	info, err := s.client.Convert(context.Background(), decimal.NewFromInt(-5), currency.EUR, currency.JPY)
	s.Require().NoError(err)
	s.Equal("-812.5", info.Amount.String())
	s.Equal("162.5", info.Rate.String())
	s.True(time.Date(2024, 3, 14, 16, 0, 0, 0, s.cet).Equal(info.LastUpdated))
}

func (s *ClientSuite) TestConvertZeroAmount() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("1", r.URL.Query().Get("amount"))
		_, _ = w.Write([]byte(`{"amount":1,"base":"GBP","date":"2024-03-15","rates":{"USD":1.27}}`))
	}

	info, err := s.client.Convert(context.Background(), decimal.Zero, currency.GBP, currency.USD)
	s.Require().NoError(err)
	s.True(info.Amount.IsZero())
	s.Equal("1.27", info.Rate.String())
}

func (s *ClientSuite) TestNonSuccessStatus() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
	}

	_, err := money.NewFromInt(10, currency.USD).Convert(context.Background(), s.client, currency.CHF)
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrCurrencyConversion)
	s.ErrorIs(err, apperrors.ErrExternalServiceHTTP)
	s.ErrorIs(err, apperrors.ErrHTTP)
	s.Contains(err.Error(), "cannot convert USD to CHF")
	s.Contains(err.Error(), `external service "exchange-rate" returned status 404`)
}

func (s *ClientSuite) TestMissingRate() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"amount":1,"base":"USD","date":"2024-03-15","rates":{}}`))
	}

	_, err := s.client.Convert(context.Background(), decimal.NewFromInt(1), currency.USD, currency.EUR)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ClientSuite) TestMalformedBody() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}

	_, err := s.client.Latest(context.Background(), "USD", nil, decimal.Zero)
	s.ErrorIs(err, apperrors.ErrMalformed)
}

func (s *ClientSuite) TestLatestAllSymbols() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.False(r.URL.Query().Has("symbols"))
		s.False(r.URL.Query().Has("amount"))
		_, _ = w.Write([]byte(`{"amount":1,"base":"EUR","date":"2024-03-15","rates":{"USD":1.09,"GBP":"0.85"}}`))
	}

	rates, err := s.client.Latest(context.Background(), "EUR", nil, decimal.Zero)
	s.Require().NoError(err)
	s.Equal("EUR", rates.Base)
	s.Len(rates.Rates, 2)
	s.Equal("0.85", rates.Rates["GBP"].String())
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := exchange.New(nil, exchange.WithBaseURL(srv.URL), exchange.WithLogger(logger.Discard()))
	_, err := c.Convert(context.Background(), decimal.NewFromInt(1), currency.USD, currency.EUR)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrExternalServiceHTTP)
	assert.Contains(t, err.Error(), "request failed")
}

func TestLastUpdate(t *testing.T) {
	c := exchange.New(nil)
	cet, err := time.LoadLocation("CET")
	require.NoError(t, err)

	after := time.Date(2024, 6, 3, 16, 0, 1, 0, cet)
	assert.True(t, time.Date(2024, 6, 3, 16, 0, 0, 0, cet).Equal(c.LastUpdate(after)))

	before := time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC)
	assert.True(t, time.Date(2024, 6, 2, 16, 0, 0, 0, cet).Equal(c.LastUpdate(before)))
}
