package token

import (
	"crypto/rsa"
	"errors"
	"time"

	"github.com/amirasaad/toolkit/pkg/apperrors"
	"github.com/golang-jwt/jwt/v5"
)

var (
	hmacMethods = []string{"HS256", "HS384", "HS512"}
	rsaMethods  = []string{"RS256", "RS384", "RS512", "PS256", "PS384", "PS512"}
)

type verifyOptions struct {
	issuer   string
	audience string
	leeway   time.Duration
	now      func() time.Time
}

// VerifyOption adds a check to verification.
type VerifyOption func(*verifyOptions)

// WithIssuer requires the "iss" claim to equal iss.
func WithIssuer(iss string) VerifyOption {
	return func(o *verifyOptions) { o.issuer = iss }
}

// WithAudience requires aud to be among the "aud" claim values.
func WithAudience(aud string) VerifyOption {
	return func(o *verifyOptions) { o.audience = aud }
}

// WithLeeway allows clock skew when checking exp, nbf and iat.
func WithLeeway(d time.Duration) VerifyOption {
	return func(o *verifyOptions) { o.leeway = d }
}

// WithTimeFunc sets the clock used for time-based claims.
func WithTimeFunc(now func() time.Time) VerifyOption {
	return func(o *verifyOptions) { o.now = now }
}

func parserOptions(methods []string, opts []VerifyOption) []jwt.ParserOption {
	var o verifyOptions
	for _, opt := range opts {
		opt(&o)
	}
	po := []jwt.ParserOption{jwt.WithValidMethods(methods), jwt.WithIssuedAt()}
	if o.issuer != "" {
		po = append(po, jwt.WithIssuer(o.issuer))
	}
	if o.audience != "" {
		po = append(po, jwt.WithAudience(o.audience))
	}
	if o.leeway > 0 {
		po = append(po, jwt.WithLeeway(o.leeway))
	}
	if o.now != nil {
		po = append(po, jwt.WithTimeFunc(o.now))
	}
	return po
}

func verify(raw string, keyFunc jwt.Keyfunc, methods []string, opts []VerifyOption) (*Token, error) {
	if err := checkShape(raw); err != nil {
		return nil, err
	}
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, keyFunc, parserOptions(methods, opts)...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, apperrors.Malformed("jwt", shorten(raw), err)
		}
		return nil, apperrors.Unauthorized("invalid token", apperrors.WithCause(err))
	}
	return &Token{raw: raw, header: tok.Header, claims: claims}, nil
}

// VerifyHMAC checks an HS256/384/512 signature with secret and the standard
// time claims.
func VerifyHMAC(raw string, secret []byte, opts ...VerifyOption) (*Token, error) {
	return verify(raw, func(*jwt.Token) (any, error) { return secret, nil }, hmacMethods, opts)
}

// VerifyRSA checks an RS* or PS* signature with key and the standard time
// claims.
func VerifyRSA(raw string, key *rsa.PublicKey, opts ...VerifyOption) (*Token, error) {
	if key == nil {
		return nil, apperrors.RequiredParameter("key", "*rsa.PublicKey")
	}
	return verify(raw, func(*jwt.Token) (any, error) { return key, nil }, rsaMethods, opts)
}
