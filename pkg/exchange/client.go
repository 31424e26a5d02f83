// Package exchange converts money through a Frankfurter-compatible
// exchange-rate HTTP API.
package exchange

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/amirasaad/toolkit/pkg/apperrors"
	"github.com/amirasaad/toolkit/pkg/config"
	"github.com/amirasaad/toolkit/pkg/currency"
	"github.com/amirasaad/toolkit/pkg/logger"
	"github.com/amirasaad/toolkit/pkg/money"
	"github.com/amirasaad/toolkit/pkg/temporal"
	"github.com/shopspring/decimal"
)

const (
	// DefaultBaseURL is the public Frankfurter v1 endpoint.
	DefaultBaseURL = "https://api.frankfurter.dev/v1"

	serviceName = "exchange-rate"
	maxErrBody  = 512
)

var (
	_ money.Converter   = (*Client)(nil)
	_ money.LastUpdater = (*Client)(nil)
)

// Rates is the body of a latest-rates response.
type Rates struct {
	Amount decimal.Decimal            `json:"amount"`
	Base   string                     `json:"base"`
	Date   string                     `json:"date"`
	Rates  map[string]decimal.Decimal `json:"rates"`
}

// Client fetches exchange rates over HTTP. It keeps no cache and does not
// retry.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	logger      *slog.Logger
	now         func() time.Time
	refreshHour int
	refreshLoc  *time.Location
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithClock sets the clock used to compute LastUpdate.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// WithBaseURL overrides the configured API URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// New creates a Client from cfg. A nil cfg uses DefaultBaseURL and a daily
// refresh at 16:00 CET.
func New(cfg *config.Exchange, opts ...Option) *Client {
	if cfg == nil {
		cfg = &config.Exchange{ApiUrl: DefaultBaseURL, HTTPTimeout: 10 * time.Second, RefreshHour: 16, RefreshZone: "CET"}
	}
	c := &Client{
		baseURL:     strings.TrimRight(cfg.ApiUrl, "/"),
		httpClient:  &http.Client{Timeout: cfg.HTTPTimeout},
		now:         time.Now,
		refreshHour: cfg.RefreshHour,
		refreshLoc:  refreshLocation(cfg.RefreshZone),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logger.OrDefault(c.logger).With("service", serviceName)
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	return c
}

func refreshLocation(name string) *time.Location {
	if name == "" {
		name = "CET"
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.FixedZone("CET", 3600)
}

// LastUpdate returns when the provider last refreshed its rates relative to
// now: today at the refresh hour when now is past it, otherwise yesterday.
func (c *Client) LastUpdate(now time.Time) time.Time {
	return temporal.PreviousCutoff(now, c.refreshHour, c.refreshLoc)
}

// Latest fetches rates from base to each of symbols, multiplied by amount
// when amount is non-zero.
func (c *Client) Latest(ctx context.Context, base string, symbols []string, amount decimal.Decimal) (*Rates, error) {
	q := url.Values{}
	q.Set("base", base)
	if len(symbols) > 0 {
		q.Set("symbols", strings.Join(symbols, ","))
	}
	if !amount.IsZero() {
		q.Set("amount", amount.String())
	}
	endpoint := c.baseURL + "/latest?" + q.Encode()

	log := c.logger.With("base", base, "symbols", symbols)
	log.Debug("Fetching exchange rates", "url", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.Internal(err, apperrors.WithDetail("building exchange-rate request"))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("Exchange rate request failed", "error", err)
		return nil, apperrors.ExternalServiceHTTP(serviceName, 0, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		err := apperrors.ExternalServiceHTTP(serviceName, resp.StatusCode,
			apperrors.HTTP(http.MethodGet, endpoint, resp.StatusCode, apperrors.WithDetail(strings.TrimSpace(string(body)))))
		log.Error("Exchange rate API returned an error", "status", resp.StatusCode, "error", err)
		return nil, err
	}

	var rates Rates
	if err := json.NewDecoder(resp.Body).Decode(&rates); err != nil {
		log.Error("Failed to decode exchange rates", "error", err)
		return nil, apperrors.Malformed("exchange-rate response", nil, err)
	}
	log.Info("Exchange rates fetched", "date", rates.Date, "count", len(rates.Rates))
	return &rates, nil
}

// Convert implements money.Converter. The API only multiplies by positive
// amounts, so the sign is applied locally and a zero amount is priced at one
// unit to obtain the rate.
func (c *Client) Convert(
	ctx context.Context,
	amount decimal.Decimal,
	from, to *currency.Currency,
) (*money.ConversionInfo, error) {
	if from == nil {
		return nil, apperrors.RequiredParameter("from", "*currency.Currency")
	}
	if to == nil {
		return nil, apperrors.RequiredParameter("to", "*currency.Currency")
	}

	quoted := amount.Abs()
	if quoted.IsZero() {
		quoted = decimal.NewFromInt(1)
	}
	rates, err := c.Latest(ctx, from.Code(), []string{to.Code()}, quoted)
	if err != nil {
		return nil, err
	}
	value, ok := rates.Rates[to.Code()]
	if !ok {
		return nil, apperrors.NotFound("exchange rate", from.Code()+"/"+to.Code())
	}

	converted := value
	switch amount.Sign() {
	case 0:
		converted = decimal.Zero
	case -1:
		converted = value.Neg()
	}
	return &money.ConversionInfo{
		Amount:      converted,
		Rate:        value.Div(quoted),
		LastUpdated: c.LastUpdate(c.now()),
	}, nil
}
