package apperrors

import (
	"fmt"
	"net/http"
	"strings"
)

// Render formats the message of e without its internal code.
func Render(e *Error) string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	switch e.Kind {
	case KindValidation:
		b.WriteString("validation failed")
		writeDetail(&b, e.Detail)
	case KindRequiredField:
		fmt.Fprintf(&b, "required field %q", e.Field)
		if e.Owner != "" {
			fmt.Fprintf(&b, " of %s", e.Owner)
		}
		b.WriteString(" is missing")
	case KindRequiredParameter:
		fmt.Fprintf(&b, "required parameter %q", e.Field)
		if e.Owner != "" {
			fmt.Fprintf(&b, " (%s)", e.Owner)
		}
		b.WriteString(" is missing")
	case KindInvalidParameter:
		fmt.Fprintf(&b, "invalid parameter %q", e.Field)
		if e.Expected != nil {
			fmt.Fprintf(&b, ": expected %v, got %v", e.Expected, e.Actual)
		} else if e.Actual != nil {
			fmt.Fprintf(&b, ": got %v", e.Actual)
		}
	case KindNotFound:
		fmt.Fprintf(&b, "%s %q not found", ownerOr(e.Owner, "resource"), fmt.Sprint(e.Key))
	case KindAlreadyExists:
		fmt.Fprintf(&b, "%s %q already exists", ownerOr(e.Owner, "resource"), fmt.Sprint(e.Key))
	case KindConflict:
		fmt.Fprintf(&b, "conflict on %s", ownerOr(e.Owner, "resource"))
		writeDetail(&b, e.Detail)
	case KindUnauthorized:
		b.WriteString("unauthorized")
		writeDetail(&b, e.Detail)
	case KindInsufficientPermissions:
		fmt.Fprintf(&b, "%q lacks permission to %s", e.Subject, e.Action)
	case KindCurrencyMismatch:
		action := e.Action
		if action == "" {
			action = "combine"
		}
		fmt.Fprintf(&b, "cannot %s different currencies: %s", action, strings.Join(e.Currencies, " and "))
	case KindCurrencyConversion:
		fmt.Fprintf(&b, "cannot convert %s", strings.Join(e.Currencies, " to "))
	case KindMalformed:
		fmt.Fprintf(&b, "malformed %s", ownerOr(e.Field, "input"))
		if e.Actual != nil {
			fmt.Fprintf(&b, " %q", fmt.Sprint(e.Actual))
		}
	case KindArithmetic:
		b.WriteString("arithmetic error")
		if e.Action != "" {
			fmt.Fprintf(&b, " in %s", e.Action)
		}
		writeDetail(&b, e.Detail)
	case KindHTTP:
		fmt.Fprintf(&b, "%s %s returned status %d %s", e.Method, e.URL, e.Status, http.StatusText(e.Status))
	case KindExternalServiceHTTP:
		fmt.Fprintf(&b, "external service %q", e.Service)
		if e.Status != 0 {
			fmt.Fprintf(&b, " returned status %d", e.Status)
		} else {
			b.WriteString(" request failed")
		}
	case KindEmail:
		b.WriteString("sending email failed")
	case KindHashing:
		b.WriteString("hashing failed")
	case KindEncryption:
		b.WriteString("encryption failed")
	default:
		b.WriteString("internal error")
	}

	switch e.Kind {
	case KindValidation, KindConflict, KindUnauthorized, KindArithmetic:
	default:
		if e.Detail != "" {
			fmt.Fprintf(&b, " (%s)", e.Detail)
		}
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func writeDetail(b *strings.Builder, detail string) {
	if detail != "" {
		b.WriteString(": ")
		b.WriteString(detail)
	}
}

func ownerOr(owner, fallback string) string {
	if owner == "" {
		return fallback
	}
	return owner
}
