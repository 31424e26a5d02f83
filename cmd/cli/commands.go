package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/amirasaad/toolkit/pkg/apperrors"
	"github.com/amirasaad/toolkit/pkg/config"
	"github.com/amirasaad/toolkit/pkg/currency"
	"github.com/amirasaad/toolkit/pkg/exchange"
	"github.com/amirasaad/toolkit/pkg/mail"
	"github.com/amirasaad/toolkit/pkg/money"
	"github.com/amirasaad/toolkit/pkg/temporal"
	"github.com/amirasaad/toolkit/pkg/token"
	"github.com/amirasaad/toolkit/pkg/utils"
	"github.com/fatih/color"
	"golang.org/x/term"
	"golang.org/x/text/language"
)

var (
	label = color.New(color.FgCyan).SprintFunc()
	value = color.New(color.FgGreen, color.Bold).SprintFunc()
	warn  = color.New(color.FgYellow).SprintFunc()
)

type cli struct {
	cfg *config.App
	out io.Writer
	in  *os.File
	// converter overrides the exchange client.
	converter money.Converter
}

func usageError(usage string) error {
	return apperrors.Validation("usage: " + usage)
}

func (c *cli) field(name string, v any) {
	fmt.Fprintf(c.out, "%s %v\n", label(fmt.Sprintf("%-16s", name+":")), value(v)) //nolint:errcheck
}

func (c *cli) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "currency":
		if len(args) < 1 {
			return usageError("currency <code|numeric>")
		}
		return c.currency(args[0])
	case "money":
		if len(args) < 1 {
			return usageError(`money "<CUR> <amount>" [style] [locale]`)
		}
		return c.money(args[0], args[1:])
	case "convert":
		if len(args) < 3 {
			return usageError("convert <amount> <from> <to>")
		}
		return c.convert(ctx, args[0], args[1], args[2])
	case "jwt":
		if len(args) < 1 {
			return usageError("jwt <token>")
		}
		return c.jwt(args[0])
	case "date":
		if len(args) < 1 {
			return usageError("date <iso-8601>")
		}
		return c.date(args[0])
	case "mail":
		if len(args) < 3 {
			return usageError("mail <to> <subject> <body>")
		}
		return c.mail(ctx, args[0], args[1], strings.Join(args[2:], " "))
	case "hash":
		if len(args) < 1 {
			return usageError("hash <password>")
		}
		return c.hash(args[0])
	default:
		return apperrors.Validation("unknown command " + cmd)
	}
}

func (c *cli) currency(code string) error {
	cur := currency.Of(code)
	if cur == nil {
		return apperrors.NotFound("Currency", code)
	}
	c.field("Code", cur.Code())
	c.field("Name", cur.Name())
	c.field("Numeric", cur.NumericCode())
	c.field("Symbol", cur.Symbol())
	if unit, ok := cur.FractionalUnit(); ok {
		c.field("Minor unit", fmt.Sprintf("%s (1/%d)", unit, cur.FractionalUnits()))
	}
	c.field("Digits", cur.Digits())
	countries := cur.Countries()
	sort.Strings(countries)
	c.field("Countries", strings.Join(countries, " "))
	return nil
}

func (c *cli) money(s string, rest []string) error {
	m, err := money.Parse(s)
	if err != nil {
		return err
	}
	opts := []money.FormatOption{}
	if len(rest) > 0 {
		style, ok := money.ParseStyle(rest[0])
		if !ok {
			return apperrors.InvalidParameter("style", "code, name, localized-name, numeric, symbol, simplified-symbol or locale-symbol", rest[0])
		}
		opts = append(opts, money.WithStyle(style))
	}
	if len(rest) > 1 {
		tag, err := language.Parse(rest[1])
		if err != nil {
			return apperrors.Malformed("locale", rest[1], err)
		}
		opts = append(opts, money.WithLocale(tag))
	}
	c.field("Money", m.Format(opts...))
	minor, err := m.MinorUnits()
	if err != nil {
		return err
	}
	c.field("Minor units", minor)
	return nil
}

func (c *cli) convert(ctx context.Context, amount, from, to string) error {
	m, err := money.Parse(from + " " + amount)
	if err != nil {
		return err
	}
	target := currency.Of(to)
	if target == nil {
		return apperrors.NotFound("Currency", to)
	}
	conv := c.converter
	if conv == nil {
		conv = exchange.New(c.cfg.Exchange)
	}
	res, err := m.Convert(ctx, conv, target)
	if err != nil {
		return err
	}
	c.field("From", m)
	c.field("To", res.Money)
	c.field("Rate", res.Rate)
	c.field("Last updated", temporal.FormatDateTime(res.LastUpdated))
	return nil
}

func (c *cli) jwt(raw string) error {
	tok, err := token.Parse(raw)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, warn("Signature not verified")) //nolint:errcheck
	c.field("Algorithm", tok.Algorithm())
	if kid := tok.KeyID(); kid != "" {
		c.field("Key ID", kid)
	}
	c.field("Issuer", tok.Issuer())
	c.field("Subject", tok.Subject())
	c.field("Audience", strings.Join(tok.Audience(), " "))
	if exp := tok.ExpiresAt(); exp != nil {
		state := "valid"
		if tok.Expired(time.Now()) {
			state = "expired"
		}
		c.field("Expires", fmt.Sprintf("%s (%s)", temporal.FormatDateTime(*exp), state))
	}
	claims := tok.Claims()
	keys := make([]string, 0, len(claims))
	for k := range claims {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		c.field(k, claims[k])
	}
	return nil
}

// date tries the ISO 8601 forms from most to least specific.
func (c *cli) date(s string) error {
	if t, err := temporal.ParseZonedDateTime(s); err == nil {
		c.field("Zoned date-time", t.Format(time.RFC3339))
		c.field("Zone", t.Location())
		return nil
	}
	if t, err := temporal.ParseOffsetDateTime(s); err == nil {
		c.field("Offset date-time", t.Format(time.RFC3339))
		c.field("Instant", t.UTC().Format(time.RFC3339Nano))
		return nil
	}
	if t, err := temporal.ParseDateTime(s, time.Local); err == nil {
		c.field("Local date-time", temporal.FormatDateTime(t))
		return nil
	}
	if t, err := temporal.ParseDate(s); err == nil {
		c.field("Date", temporal.FormatDate(t))
		c.field("Weekday", t.Weekday())
		c.field("Week", fmt.Sprintf("%s .. %s",
			temporal.FormatDate(temporal.StartOfWeek(t)), temporal.FormatDate(temporal.EndOfWeek(t))))
		return nil
	}
	if ym, err := temporal.ParseYearMonth(s); err == nil {
		c.field("Year-month", ym)
		c.field("Days", ym.Days())
		return nil
	}
	if tod, err := temporal.ParseTime(s); err == nil {
		c.field("Time", tod)
		return nil
	}
	p, err := temporal.ParsePeriod(s)
	if err != nil {
		return apperrors.Malformed("ISO 8601 value", s, nil)
	}
	c.field("Period", p)
	c.field("From now", temporal.FormatDateTime(p.AddTo(time.Now())))
	return nil
}

func (c *cli) mail(ctx context.Context, to, subject, body string) error {
	if c.cfg.SMTP == nil {
		return apperrors.RequiredField(config.App{}, "SMTP")
	}
	smtp := *c.cfg.SMTP
	if smtp.Username != "" && smtp.Password == "" {
		password, err := c.readPassword(fmt.Sprintf("SMTP password for %s: ", smtp.Username))
		if err != nil {
			return err
		}
		smtp.Password = password
	}
	sender, err := mail.NewSender(&smtp)
	if err != nil {
		return err
	}
	if err := sender.Send(ctx, mail.Message{To: []string{to}, Subject: subject, Text: body}); err != nil {
		return err
	}
	c.field("Sent to", to)
	return nil
}

func (c *cli) readPassword(prompt string) (string, error) {
	if c.in == nil || !term.IsTerminal(int(c.in.Fd())) {
		return "", errors.New("no terminal to read the password from")
	}
	fmt.Fprint(c.out, prompt) //nolint:errcheck
	b, err := term.ReadPassword(int(c.in.Fd()))
	fmt.Fprintln(c.out) //nolint:errcheck
	if err != nil {
		return "", apperrors.Internal(err)
	}
	return string(b), nil
}

func (c *cli) hash(password string) error {
	h, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	c.field("Hash", h)
	return nil
}
