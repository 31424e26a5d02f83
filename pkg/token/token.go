// Package token parses, generates and verifies JSON Web Tokens on top of
// golang-jwt.
package token

import (
	"strings"
	"time"

	"github.com/amirasaad/toolkit/pkg/apperrors"
	"github.com/golang-jwt/jwt/v5"
)

// Token is a decoded JWT. Tokens returned by Parse are not verified; use
// VerifyHMAC, VerifyRSA or VerifyOpenID before trusting the claims.
type Token struct {
	raw    string
	header map[string]any
	claims jwt.MapClaims
}

func checkShape(raw string) error {
	if strings.Count(raw, ".") != 2 {
		return apperrors.Malformed("jwt", shorten(raw), nil,
			apperrors.WithDetail("expected three dot-separated parts"))
	}
	return nil
}

func shorten(raw string) string {
	if len(raw) > 24 {
		return raw[:24] + "..."
	}
	return raw
}

// Parse decodes raw without verifying its signature.
func Parse(raw string) (*Token, error) {
	if err := checkShape(raw); err != nil {
		return nil, err
	}
	claims := jwt.MapClaims{}
	tok, _, err := jwt.NewParser().ParseUnverified(raw, claims)
	if err != nil {
		return nil, apperrors.Malformed("jwt", shorten(raw), err)
	}
	return &Token{raw: raw, header: tok.Header, claims: claims}, nil
}

// IsValid reports whether raw decodes as a JWT. It does not check the
// signature.
func IsValid(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// Raw returns the encoded token.
func (t *Token) Raw() string { return t.raw }

// Header returns a header parameter.
func (t *Token) Header(name string) (any, bool) {
	v, ok := t.header[name]
	return v, ok
}

func (t *Token) headerString(name string) string {
	s, _ := t.header[name].(string)
	return s
}

// Algorithm returns the "alg" header.
func (t *Token) Algorithm() string { return t.headerString("alg") }

// KeyID returns the "kid" header.
func (t *Token) KeyID() string { return t.headerString("kid") }

// Type returns the "typ" header.
func (t *Token) Type() string { return t.headerString("typ") }

// ContentType returns the "cty" header.
func (t *Token) ContentType() string { return t.headerString("cty") }

// Claims returns a copy of the payload.
func (t *Token) Claims() map[string]any {
	out := make(map[string]any, len(t.claims))
	for k, v := range t.claims {
		out[k] = v
	}
	return out
}

// Claim returns a payload claim.
func (t *Token) Claim(name string) (any, bool) {
	v, ok := t.claims[name]
	return v, ok
}

// StringClaim returns a claim when it is a string.
func (t *Token) StringClaim(name string) (string, bool) {
	s, ok := t.claims[name].(string)
	return s, ok
}

func (t *Token) str(name string) string {
	s, _ := t.StringClaim(name)
	return s
}

func (t *Token) Issuer() string { return t.str("iss") }

func (t *Token) Subject() string { return t.str("sub") }

func (t *Token) ID() string { return t.str("jti") }

// Audience returns the "aud" claim, which may be a string or a list.
func (t *Token) Audience() []string {
	aud, err := t.claims.GetAudience()
	if err != nil {
		return nil
	}
	return aud
}

func numericTime(d *jwt.NumericDate, err error) *time.Time {
	if err != nil || d == nil {
		return nil
	}
	tm := d.Time
	return &tm
}

// ExpiresAt returns the "exp" claim, or nil when absent.
func (t *Token) ExpiresAt() *time.Time { return numericTime(t.claims.GetExpirationTime()) }

// NotBefore returns the "nbf" claim, or nil when absent.
func (t *Token) NotBefore() *time.Time { return numericTime(t.claims.GetNotBefore()) }

// IssuedAt returns the "iat" claim, or nil when absent.
func (t *Token) IssuedAt() *time.Time { return numericTime(t.claims.GetIssuedAt()) }

// Expired reports whether the token has an expiry at or before now.
func (t *Token) Expired(now time.Time) bool {
	exp := t.ExpiresAt()
	return exp != nil && !now.Before(*exp)
}
