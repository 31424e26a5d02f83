package token

import (
	"time"

	"github.com/amirasaad/toolkit/pkg/apperrors"
	"github.com/amirasaad/toolkit/pkg/config"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var validate = validator.New()

// Generator signs new tokens.
type Generator struct {
	Method   jwt.SigningMethod `validate:"required"`
	Key      any               `validate:"required"`
	KeyID    string
	Issuer   string
	Audience []string
	Expiry   time.Duration `validate:"gt=0"`
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewHMACGenerator returns an HS256 generator from the JWT config.
func NewHMACGenerator(cfg *config.Jwt) (*Generator, error) {
	if cfg == nil || cfg.Secret == "" {
		return nil, apperrors.RequiredField(config.Jwt{}, "Secret")
	}
	g := &Generator{
		Method: jwt.SigningMethodHS256,
		Key:    []byte(cfg.Secret),
		Issuer: cfg.Issuer,
		Expiry: cfg.Expiry,
	}
	if cfg.Audience != "" {
		g.Audience = []string{cfg.Audience}
	}
	return g, nil
}

// Generate signs a token for subject. It sets jti, iat, nbf and exp, plus
// iss and aud when configured; extra claims are added first and cannot
// override those.
func (g *Generator) Generate(subject string, extra map[string]any) (string, error) {
	if err := validate.Struct(g); err != nil {
		return "", apperrors.FromValidation(g, err)
	}
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	issued := now()

	claims := jwt.MapClaims{}
	for k, v := range extra {
		claims[k] = v
	}
	if subject != "" {
		claims["sub"] = subject
	}
	if g.Issuer != "" {
		claims["iss"] = g.Issuer
	}
	switch len(g.Audience) {
	case 0:
	case 1:
		claims["aud"] = g.Audience[0]
	default:
		claims["aud"] = g.Audience
	}
	claims["jti"] = uuid.NewString()
	claims["iat"] = issued.Unix()
	claims["nbf"] = issued.Unix()
	claims["exp"] = issued.Add(g.Expiry).Unix()

	tok := jwt.NewWithClaims(g.Method, claims)
	if g.KeyID != "" {
		tok.Header["kid"] = g.KeyID
	}
	signed, err := tok.SignedString(g.Key)
	if err != nil {
		return "", apperrors.Internal(err, apperrors.WithDetail("signing jwt"))
	}
	return signed, nil
}
