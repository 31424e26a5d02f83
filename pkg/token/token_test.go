package token_test

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/amirasaad/toolkit/pkg/apperrors"
	"github.com/amirasaad/toolkit/pkg/config"
	"github.com/amirasaad/toolkit/pkg/token"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("s3cr3t-key-for-tests")

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return raw
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "abc", "a.b", "a.b.c.d", "not.a.jwt"} {
		t.Run(raw, func(t *testing.T) {
			_, err := token.Parse(raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrMalformed)
			assert.False(t, token.IsValid(raw))
		})
	}
}

func TestParseClaims(t *testing.T) {
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	raw := sign(t, jwt.MapClaims{
		"iss":                "https://id.example.com",
		"sub":                "user-1",
		"aud":                []string{"api", "web"},
		"jti":                "abc",
		"exp":                exp.Unix(),
		"iat":                exp.Add(-time.Hour).Unix(),
		"email":              "ada@example.com",
		"email_verified":     "true",
		"name":               "Ada Lovelace",
		"given_name":         "Ada",
		"family_name":        "Lovelace",
		"preferred_username": "ada",
		"scope":              "openid profile email",
		"groups":             []string{"admins"},
		"roles":              []string{"Reader"},
		"tid":                "tenant",
		"realm_access":       map[string]any{"roles": []string{"offline_access"}},
		"resource_access": map[string]any{
			"billing": map[string]any{"roles": []string{"invoice:read", "invoice:write"}},
		},
	})

	tok, err := token.Parse(raw)
	require.NoError(t, err)
	assert.True(t, token.IsValid(raw))
	assert.Equal(t, raw, tok.Raw())
	assert.Equal(t, "HS256", tok.Algorithm())
	assert.Equal(t, "JWT", tok.Type())
	assert.Empty(t, tok.KeyID())

	assert.Equal(t, "https://id.example.com", tok.Issuer())
	assert.Equal(t, "user-1", tok.Subject())
	assert.Equal(t, "abc", tok.ID())
	assert.Equal(t, []string{"api", "web"}, tok.Audience())
	require.NotNil(t, tok.ExpiresAt())
	assert.True(t, exp.Equal(*tok.ExpiresAt()))
	require.NotNil(t, tok.IssuedAt())
	assert.Nil(t, tok.NotBefore())
	assert.False(t, tok.Expired(exp.Add(-time.Second)))
	assert.True(t, tok.Expired(exp))

	assert.Equal(t, "ada@example.com", tok.Email())
	assert.True(t, tok.EmailVerified())
	assert.Equal(t, "Ada Lovelace", tok.Name())
	assert.Equal(t, "Ada", tok.GivenName())
	assert.Equal(t, "Lovelace", tok.FamilyName())
	assert.Equal(t, "ada", tok.PreferredUsername())
	assert.Equal(t, []string{"openid", "profile", "email"}, tok.Scopes())
	assert.Equal(t, []string{"admins"}, tok.Groups())
	assert.Equal(t, []string{"Reader"}, tok.Roles())
	assert.Equal(t, "tenant", tok.TenantID())
	assert.Equal(t, []string{"offline_access"}, tok.RealmRoles())
	assert.Equal(t, []string{"invoice:read", "invoice:write"}, tok.ResourceRoles("billing"))
	assert.Empty(t, tok.ResourceRoles("other"))
	assert.Empty(t, tok.Nonce())

	email, ok := tok.StringClaim("email")
	assert.True(t, ok)
	assert.Equal(t, "ada@example.com", email)
	_, ok = tok.StringClaim("exp")
	assert.False(t, ok)

	claims := tok.Claims()
	delete(claims, "sub")
	assert.Equal(t, "user-1", tok.Subject())
}

func TestScopesFallsBackToScp(t *testing.T) {
	tok, err := token.Parse(sign(t, jwt.MapClaims{"scp": []string{"read", "write"}, "aud": "api"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"read", "write"}, tok.Scopes())
	assert.Equal(t, []string{"api"}, tok.Audience())
	assert.False(t, tok.EmailVerified())
	assert.False(t, tok.Expired(time.Now()))
}

func fixedClock() time.Time { return time.Now().Add(-time.Minute).Truncate(time.Second) }

func TestGenerateAndVerifyHMAC(t *testing.T) {
	gen, err := token.NewHMACGenerator(&config.Jwt{
		Secret:   string(secret),
		Issuer:   "toolkit",
		Audience: "api",
		Expiry:   time.Hour,
	})
	require.NoError(t, err)
	gen.KeyID = "k1"
	gen.Now = fixedClock

	raw, err := gen.Generate("user-7", map[string]any{"role": "admin", "sub": "ignored"})
	require.NoError(t, err)

	tok, err := token.VerifyHMAC(raw, secret, token.WithIssuer("toolkit"), token.WithAudience("api"))
	require.NoError(t, err)
	assert.Equal(t, "user-7", tok.Subject())
	assert.Equal(t, "toolkit", tok.Issuer())
	assert.Equal(t, []string{"api"}, tok.Audience())
	assert.Equal(t, "k1", tok.KeyID())
	assert.NotEmpty(t, tok.ID())
	role, _ := tok.StringClaim("role")
	assert.Equal(t, "admin", role)
	require.NotNil(t, tok.ExpiresAt())
	assert.Equal(t, time.Hour, tok.ExpiresAt().Sub(*tok.IssuedAt()))

	other, err := gen.Generate("user-7", nil)
	require.NoError(t, err)
	otherTok, err := token.Parse(other)
	require.NoError(t, err)
	assert.NotEqual(t, tok.ID(), otherTok.ID())
}

func TestVerifyHMACFailures(t *testing.T) {
	gen := &token.Generator{
		Method:   jwt.SigningMethodHS256,
		Key:      secret,
		Issuer:   "toolkit",
		Audience: []string{"api", "web"},
		Expiry:   time.Hour,
		Now:      fixedClock,
	}
	raw, err := gen.Generate("user-7", nil)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := token.VerifyHMAC(raw, []byte("other"))
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})
	t.Run("wrong issuer", func(t *testing.T) {
		_, err := token.VerifyHMAC(raw, secret, token.WithIssuer("someone-else"))
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})
	t.Run("wrong audience", func(t *testing.T) {
		_, err := token.VerifyHMAC(raw, secret, token.WithAudience("mobile"))
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidAudience)
	})
	t.Run("second audience", func(t *testing.T) {
		_, err := token.VerifyHMAC(raw, secret, token.WithAudience("web"))
		assert.NoError(t, err)
	})
	t.Run("expired", func(t *testing.T) {
		later := func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := token.VerifyHMAC(raw, secret, token.WithTimeFunc(later))
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)

		_, err = token.VerifyHMAC(raw, secret, token.WithTimeFunc(later), token.WithLeeway(2*time.Hour))
		assert.NoError(t, err)
	})
	t.Run("not yet valid", func(t *testing.T) {
		earlier := func() time.Time { return time.Now().Add(-time.Hour) }
		_, err := token.VerifyHMAC(raw, secret, token.WithTimeFunc(earlier))
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
	t.Run("malformed", func(t *testing.T) {
		_, err := token.VerifyHMAC("a.b", secret)
		assert.ErrorIs(t, err, apperrors.ErrMalformed)
		_, err = token.VerifyHMAC("a.b.c", secret)
		assert.ErrorIs(t, err, apperrors.ErrMalformed)
	})
	t.Run("algorithm not allowed", func(t *testing.T) {
		none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "x"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = token.VerifyHMAC(none, secret)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestGeneratorValidation(t *testing.T) {
	_, err := token.NewHMACGenerator(&config.Jwt{Expiry: time.Hour})
	assert.ErrorIs(t, err, apperrors.ErrRequiredField)
	_, err = token.NewHMACGenerator(nil)
	assert.ErrorIs(t, err, apperrors.ErrRequiredField)

	_, err = (&token.Generator{Key: secret, Expiry: time.Hour}).Generate("x", nil)
	assert.ErrorIs(t, err, apperrors.ErrRequiredField)
	assert.Contains(t, err.Error(), `"Method"`)

	_, err = (&token.Generator{Method: jwt.SigningMethodHS256, Key: secret}).Generate("x", nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidParameter)

	// an HMAC method cannot sign with an RSA key
	key := rsaKey(t)
	_, err = (&token.Generator{Method: jwt.SigningMethodHS256, Key: key, Expiry: time.Hour}).Generate("x", nil)
	assert.ErrorIs(t, err, apperrors.ErrInternal)
}

var testKey *rsa.PrivateKey

func rsaKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	if testKey == nil {
		k, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
		testKey = k
	}
	return testKey
}

func TestVerifyRSA(t *testing.T) {
	key := rsaKey(t)
	gen := &token.Generator{Method: jwt.SigningMethodRS256, Key: key, Expiry: time.Hour, Now: fixedClock}
	raw, err := gen.Generate("svc", nil)
	require.NoError(t, err)

	tok, err := token.VerifyRSA(raw, &key.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, "svc", tok.Subject())
	assert.Equal(t, "RS256", tok.Algorithm())

	_, err = token.VerifyRSA(raw, nil)
	assert.ErrorIs(t, err, apperrors.ErrRequiredParameter)

	// HMAC tokens are rejected by the RSA verifier
	hmacRaw := sign(t, jwt.MapClaims{"sub": "svc"})
	_, err = token.VerifyRSA(hmacRaw, &key.PublicKey)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	_, err = token.VerifyRSA(raw, &other.PublicKey)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}
