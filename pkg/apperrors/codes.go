package apperrors

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CodeDelimiter separates an internal error code from the message text.
const CodeDelimiter = " |# "

// ExtractCode splits msg into its internal code and the remaining message.
// ok is false when msg carries no code.
func ExtractCode(msg string) (code, rest string, ok bool) {
	idx := strings.Index(msg, CodeDelimiter)
	if idx <= 0 {
		return "", msg, false
	}
	code = msg[:idx]
	if strings.ContainsAny(code, " \t\n") {
		return "", msg, false
	}
	return code, msg[idx+len(CodeDelimiter):], true
}

// CodeOf returns the internal error code carried by err. It prefers the
// structured field and falls back to parsing the message, so codes survive
// errors that were flattened to strings and re-wrapped.
func CodeOf(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	var e *Error
	if errors.As(err, &e) && e.Code != "" {
		return e.Code, true
	}
	code, _, ok := ExtractCode(err.Error())
	return code, ok
}

// FromValidation converts validator errors into RequiredField and
// InvalidParameter errors joined together. Other errors are wrapped as
// internal errors.
func FromValidation(owner any, err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Internal(err)
	}
	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			errs = append(errs, RequiredField(owner, fe.Field()))
			continue
		}
		expected := fe.Tag()
		if fe.Param() != "" {
			expected += "=" + fe.Param()
		}
		errs = append(errs, InvalidParameter(fe.Field(), expected, fe.Value()))
	}
	return errors.Join(errs...)
}
