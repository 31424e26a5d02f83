// Package apperrors provides the structured error model shared by every
// toolkit package.
//
// An *Error records what went wrong as data (the kind plus the offending
// field, values, currencies or HTTP status) and leaves message assembly to
// Render. Each kind has a sentinel so callers can branch with errors.Is:
//
//	if errors.Is(err, apperrors.ErrCurrencyMismatch) { ... }
//
// An optional internal error code can be embedded in the message behind
// CodeDelimiter and recovered later with ExtractCode or CodeOf.
package apperrors

import (
	"errors"
	"reflect"
)

// Kind classifies an Error.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindRequiredField
	KindRequiredParameter
	KindInvalidParameter
	KindNotFound
	KindAlreadyExists
	KindConflict
	KindUnauthorized
	KindInsufficientPermissions
	KindCurrencyMismatch
	KindCurrencyConversion
	KindMalformed
	KindArithmetic
	KindHTTP
	KindExternalServiceHTTP
	KindEmail
	KindHashing
	KindEncryption
)

// Sentinels, one per kind. Errors built by this package unwrap to the
// sentinel of their kind; the field kinds also unwrap to ErrValidation.
var (
	ErrInternal                = errors.New("internal error")
	ErrValidation              = errors.New("validation error")
	ErrRequiredField           = errors.New("required field missing")
	ErrRequiredParameter       = errors.New("required parameter missing")
	ErrInvalidParameter        = errors.New("invalid parameter")
	ErrNotFound                = errors.New("resource not found")
	ErrAlreadyExists           = errors.New("resource already exists")
	ErrConflict                = errors.New("conflict")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrCurrencyMismatch        = errors.New("currency mismatch")
	ErrCurrencyConversion      = errors.New("currency conversion failed")
	ErrMalformed               = errors.New("malformed input")
	ErrArithmetic              = errors.New("arithmetic error")
	ErrHTTP                    = errors.New("http error")
	ErrExternalServiceHTTP     = errors.New("external service http error")
	ErrEmail                   = errors.New("email error")
	ErrHashing                 = errors.New("hashing error")
	ErrEncryption              = errors.New("encryption error")
)

var sentinels = map[Kind]error{
	KindInternal:                ErrInternal,
	KindValidation:              ErrValidation,
	KindRequiredField:           ErrRequiredField,
	KindRequiredParameter:       ErrRequiredParameter,
	KindInvalidParameter:        ErrInvalidParameter,
	KindNotFound:                ErrNotFound,
	KindAlreadyExists:           ErrAlreadyExists,
	KindConflict:                ErrConflict,
	KindUnauthorized:            ErrUnauthorized,
	KindInsufficientPermissions: ErrInsufficientPermissions,
	KindCurrencyMismatch:        ErrCurrencyMismatch,
	KindCurrencyConversion:      ErrCurrencyConversion,
	KindMalformed:               ErrMalformed,
	KindArithmetic:              ErrArithmetic,
	KindHTTP:                    ErrHTTP,
	KindExternalServiceHTTP:     ErrExternalServiceHTTP,
	KindEmail:                   ErrEmail,
	KindHashing:                 ErrHashing,
	KindEncryption:              ErrEncryption,
}

// Sentinel returns the sentinel error for k.
func (k Kind) Sentinel() error {
	if err, ok := sentinels[k]; ok {
		return err
	}
	return ErrInternal
}

// String returns the sentinel text of the kind.
func (k Kind) String() string { return k.Sentinel().Error() }

func (k Kind) isValidation() bool {
	switch k {
	case KindRequiredField, KindRequiredParameter, KindInvalidParameter:
		return true
	}
	return false
}

// Error is a structured, self-describing error.
type Error struct {
	Kind Kind
	// Code is an optional machine-readable internal error code.
	Code string

	Owner      string
	Field      string
	Expected   any
	Actual     any
	Key        any
	Currencies []string

	Subject string
	Action  string

	Service string
	Method  string
	URL     string
	Status  int

	Detail string
	Err    error
}

// Error renders the message, prefixed with the internal code when present.
func (e *Error) Error() string {
	msg := Render(e)
	if e.Code == "" {
		return msg
	}
	return e.Code + CodeDelimiter + msg
}

// Unwrap exposes the kind sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	errs := []error{e.Kind.Sentinel()}
	if e.Kind.isValidation() {
		errs = append(errs, ErrValidation)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Option customises an Error at construction.
type Option func(*Error)

// WithCode embeds an internal error code.
func WithCode(code string) Option {
	return func(e *Error) { e.Code = code }
}

// WithDetail attaches free-form detail appended to the rendered message.
func WithDetail(detail string) Option {
	return func(e *Error) { e.Detail = detail }
}

// WithCause records the underlying error.
func WithCause(err error) Option {
	return func(e *Error) { e.Err = err }
}

func build(e *Error, opts []Option) *Error {
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return KindInternal, false
}

// TypeName returns the name of v's type, dereferencing pointers. A string
// is returned unchanged so callers can pass a literal owner name.
func TypeName(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}
