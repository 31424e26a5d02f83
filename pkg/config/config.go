package config

import (
	"time"
)

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text" validate:"oneof=json text logfmt"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[toolkit]"`
}

// Exchange configures the exchange-rate HTTP client. Rates are refreshed once
// a day at RefreshHour in RefreshZone.
type Exchange struct {
	ApiUrl      string        `envconfig:"API_URL" default:"https://api.frankfurter.dev/v1" validate:"required,url"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	RefreshHour int           `envconfig:"REFRESH_HOUR" default:"16" validate:"gte=0,lte=23"`
	RefreshZone string        `envconfig:"REFRESH_ZONE" default:"CET"`
}

type SMTP struct {
	Host      string        `envconfig:"HOST" default:"localhost" validate:"required"`
	Port      int           `envconfig:"PORT" default:"587" validate:"gt=0,lte=65535"`
	Username  string        `envconfig:"USERNAME"`
	Password  string        `envconfig:"PASSWORD"`
	From      string        `envconfig:"FROM" validate:"omitempty,email"`
	TLSPolicy string        `envconfig:"TLS_POLICY" default:"mandatory" validate:"oneof=mandatory opportunistic none"`
	SSL       bool          `envconfig:"SSL" default:"false"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"15s"`
}

type Jwt struct {
	Secret   string        `envconfig:"SECRET"`
	Issuer   string        `envconfig:"ISSUER"`
	Audience string        `envconfig:"AUDIENCE"`
	Expiry   time.Duration `envconfig:"EXPIRY" default:"24h" validate:"gt=0"`
}

type App struct {
	Env      string    `envconfig:"APP_ENV" default:"development"`
	Log      *Log      `envconfig:"LOG"`
	Exchange *Exchange `envconfig:"EXCHANGE_RATE"`
	SMTP     *SMTP     `envconfig:"SMTP"`
	Jwt      *Jwt      `envconfig:"JWT"`
}
