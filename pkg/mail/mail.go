// Package mail composes and delivers e-mail over SMTP.
package mail

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"github.com/amirasaad/toolkit/pkg/apperrors"
	"github.com/amirasaad/toolkit/pkg/config"
	"github.com/amirasaad/toolkit/pkg/logger"
	"github.com/go-playground/validator/v10"
	gomail "github.com/wneessen/go-mail"
)

var validate = validator.New()

// Attachment is a file sent with a message.
type Attachment struct {
	Name    string `validate:"required"`
	Content []byte
}

// Message is an e-mail to send. At least one of Text and HTML is required;
// when both are set, HTML is sent as an alternative part.
type Message struct {
	From        string       `validate:"omitempty,email"`
	To          []string     `validate:"required,min=1,dive,email"`
	Cc          []string     `validate:"omitempty,dive,email"`
	Bcc         []string     `validate:"omitempty,dive,email"`
	ReplyTo     string       `validate:"omitempty,email"`
	Subject     string       `validate:"required"`
	Text        string       `validate:"required_without=HTML"`
	HTML        string       `validate:"required_without=Text"`
	Attachments []Attachment `validate:"dive"`
}

// Transport delivers composed messages. *gomail.Client satisfies it.
type Transport interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

// Sender sends messages through one SMTP server.
type Sender struct {
	from      string
	transport Transport
	logger    *slog.Logger
}

type Option func(*Sender)

// WithTransport replaces the SMTP client.
func WithTransport(t Transport) Option {
	return func(s *Sender) { s.transport = t }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Sender) { s.logger = l }
}

var tlsPolicies = map[string]gomail.TLSPolicy{
	"mandatory":     gomail.TLSMandatory,
	"opportunistic": gomail.TLSOpportunistic,
	"none":          gomail.NoTLS,
}

// NewSender builds a sender from the SMTP config. The connection is opened
// per Send.
func NewSender(cfg *config.SMTP, opts ...Option) (*Sender, error) {
	if cfg == nil {
		return nil, apperrors.RequiredParameter("cfg", "*config.SMTP")
	}
	s := &Sender{from: cfg.From}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logger.OrDefault(s.logger).With("service", "smtp", "host", cfg.Host)

	if s.transport == nil {
		client, err := newClient(cfg)
		if err != nil {
			return nil, err
		}
		s.transport = client
	}
	return s, nil
}

func newClient(cfg *config.SMTP) (*gomail.Client, error) {
	policy, ok := tlsPolicies[strings.ToLower(cfg.TLSPolicy)]
	if !ok {
		if cfg.TLSPolicy != "" {
			return nil, apperrors.InvalidParameter("TLSPolicy", "mandatory, opportunistic or none", cfg.TLSPolicy)
		}
		policy = gomail.TLSMandatory
	}
	opts := []gomail.Option{gomail.WithTLSPolicy(policy)}
	if cfg.SSL {
		opts = append(opts, gomail.WithSSL())
	}
	if cfg.Port > 0 {
		opts = append(opts, gomail.WithPort(cfg.Port))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, gomail.WithTimeout(cfg.Timeout))
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}
	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, apperrors.Email(err, apperrors.WithDetail("configuring smtp client"))
	}
	return client, nil
}

// Compose validates msg and builds the MIME message. The sender default
// From is used when msg has none.
func (s *Sender) Compose(msg Message) (*gomail.Msg, error) {
	if msg.From == "" {
		msg.From = s.from
	}
	if err := validate.Struct(msg); err != nil {
		return nil, apperrors.FromValidation(msg, err)
	}
	if msg.From == "" {
		return nil, apperrors.RequiredField(msg, "From")
	}

	m := gomail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, apperrors.Email(err)
	}
	if err := m.To(msg.To...); err != nil {
		return nil, apperrors.Email(err)
	}
	if len(msg.Cc) > 0 {
		if err := m.Cc(msg.Cc...); err != nil {
			return nil, apperrors.Email(err)
		}
	}
	if len(msg.Bcc) > 0 {
		if err := m.Bcc(msg.Bcc...); err != nil {
			return nil, apperrors.Email(err)
		}
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return nil, apperrors.Email(err)
		}
	}
	m.Subject(msg.Subject)

	switch {
	case msg.Text != "" && msg.HTML != "":
		m.SetBodyString(gomail.TypeTextPlain, msg.Text)
		m.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	case msg.HTML != "":
		m.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	default:
		m.SetBodyString(gomail.TypeTextPlain, msg.Text)
	}
	for _, a := range msg.Attachments {
		if err := m.AttachReader(a.Name, bytes.NewReader(a.Content)); err != nil {
			return nil, apperrors.Email(err, apperrors.WithDetail("attaching "+a.Name))
		}
	}
	return m, nil
}

// Send composes msg and delivers it in one SMTP session.
func (s *Sender) Send(ctx context.Context, msg Message) error {
	m, err := s.Compose(msg)
	if err != nil {
		return err
	}
	log := s.logger.With("to", msg.To, "subject", msg.Subject)
	if err := s.transport.DialAndSendWithContext(ctx, m); err != nil {
		log.Error("Sending email failed", "error", err)
		return apperrors.Email(err)
	}
	log.Info("Email sent")
	return nil
}
