package token

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/amirasaad/toolkit/pkg/apperrors"
	"github.com/amirasaad/toolkit/pkg/logger"
	"github.com/golang-jwt/jwt/v5"
)

const (
	discoveryPath   = "/.well-known/openid-configuration"
	openIDService   = "openid"
	maxDocumentSize = 1 << 20
)

var asymmetricMethods = append(slices.Clone(rsaMethods), "ES256", "ES384", "ES512", "EdDSA")

type discoveryDocument struct {
	Issuer  string `json:"issuer"`
	JWKSURI string `json:"jwks_uri"`
}

// KeyResolver resolves the signing keys of an OpenID Connect issuer. Every
// call fetches the discovery document and then the JWKS; nothing is cached.
type KeyResolver struct {
	httpClient *http.Client
	logger     *slog.Logger
	trusted    []string
}

// ResolverOption configures a KeyResolver.
type ResolverOption func(*KeyResolver)

// WithResolverHTTPClient replaces the HTTP client.
func WithResolverHTTPClient(hc *http.Client) ResolverOption {
	return func(r *KeyResolver) { r.httpClient = hc }
}

// WithResolverLogger sets the logger.
func WithResolverLogger(l *slog.Logger) ResolverOption {
	return func(r *KeyResolver) { r.logger = l }
}

// WithTrustedIssuers restricts VerifyOpenID to tokens from the given
// issuers. Without it, any issuer named in a token is contacted.
func WithTrustedIssuers(issuers ...string) ResolverOption {
	return func(r *KeyResolver) {
		for _, iss := range issuers {
			r.trusted = append(r.trusted, strings.TrimRight(iss, "/"))
		}
	}
}

func NewKeyResolver(opts ...ResolverOption) *KeyResolver {
	r := &KeyResolver{httpClient: &http.Client{Timeout: 10 * time.Second}}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logger.OrDefault(r.logger).With("service", openIDService)
	return r
}

// Trusts reports whether tokens from issuer may be verified.
func (r *KeyResolver) Trusts(issuer string) bool {
	return len(r.trusted) == 0 || slices.Contains(r.trusted, strings.TrimRight(issuer, "/"))
}

// Keyfunc fetches the issuer's discovery document and JWKS and returns a
// jwt.Keyfunc selecting keys by "kid".
func (r *KeyResolver) Keyfunc(ctx context.Context, issuer string) (jwt.Keyfunc, error) {
	log := r.logger.With("issuer", issuer)
	log.Debug("Resolving signing keys")

	body, err := r.get(ctx, strings.TrimRight(issuer, "/")+discoveryPath)
	if err != nil {
		log.Error("Fetching discovery document failed", "error", err)
		return nil, err
	}
	var doc discoveryDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, apperrors.Malformed("openid configuration", nil, err)
	}
	if doc.JWKSURI == "" {
		return nil, apperrors.Malformed("openid configuration", nil, nil, apperrors.WithDetail("missing jwks_uri"))
	}

	body, err = r.get(ctx, doc.JWKSURI)
	if err != nil {
		log.Error("Fetching JWKS failed", "error", err)
		return nil, err
	}
	jwks, err := keyfunc.NewJSON(json.RawMessage(body))
	if err != nil {
		log.Error("Parsing JWKS failed", "error", err)
		return nil, apperrors.Malformed("jwks", nil, err)
	}
	log.Info("Signing keys resolved", "jwks_uri", doc.JWKSURI, "keys", len(jwks.KIDs()))
	return jwks.Keyfunc, nil
}

func (r *KeyResolver) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Malformed("url", url, err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.ExternalServiceHTTP(openIDService, 0, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.ExternalServiceHTTP(openIDService, resp.StatusCode,
			apperrors.HTTP(http.MethodGet, url, resp.StatusCode))
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, apperrors.ExternalServiceHTTP(openIDService, resp.StatusCode, err)
	}
	return body, nil
}

// VerifyOpenID verifies raw against the keys published by its own "iss"
// claim. The issuer is always enforced; opts may add further checks.
func VerifyOpenID(ctx context.Context, raw string, r *KeyResolver, opts ...VerifyOption) (*Token, error) {
	unverified, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	iss := unverified.Issuer()
	if iss == "" {
		return nil, apperrors.Unauthorized("token has no issuer")
	}
	if !r.Trusts(iss) {
		return nil, apperrors.Unauthorized("untrusted issuer " + iss)
	}
	keyFunc, err := r.Keyfunc(ctx, iss)
	if err != nil {
		return nil, err
	}
	return verify(raw, keyFunc, asymmetricMethods, append([]VerifyOption{WithIssuer(iss)}, opts...))
}
