package apperrors

// Validation reports a general validation failure.
func Validation(detail string, opts ...Option) *Error {
	return build(&Error{Kind: KindValidation, Detail: detail}, opts)
}

// RequiredField reports a missing field of owner. Owner may be a value of the
// owning type or its name.
func RequiredField(owner any, field string, opts ...Option) *Error {
	return build(&Error{Kind: KindRequiredField, Owner: TypeName(owner), Field: field}, opts)
}

// RequiredParameter reports a missing function parameter of type typ.
func RequiredParameter(name, typ string, opts ...Option) *Error {
	return build(&Error{Kind: KindRequiredParameter, Field: name, Owner: typ}, opts)
}

// InvalidParameter reports a parameter whose actual value is outside what
// was expected.
func InvalidParameter(name string, expected, actual any, opts ...Option) *Error {
	return build(&Error{
		Kind:     KindInvalidParameter,
		Field:    name,
		Expected: expected,
		Actual:   actual,
	}, opts)
}

// NotFound reports that nothing of owner's type exists under key.
func NotFound(owner any, key any, opts ...Option) *Error {
	return build(&Error{Kind: KindNotFound, Owner: TypeName(owner), Key: key}, opts)
}

// AlreadyExists reports a duplicate of owner's type under key.
func AlreadyExists(owner any, key any, opts ...Option) *Error {
	return build(&Error{Kind: KindAlreadyExists, Owner: TypeName(owner), Key: key}, opts)
}

// Conflict reports a state conflict on owner.
func Conflict(owner any, detail string, opts ...Option) *Error {
	return build(&Error{Kind: KindConflict, Owner: TypeName(owner), Detail: detail}, opts)
}

// Unauthorized reports missing or invalid credentials.
func Unauthorized(detail string, opts ...Option) *Error {
	return build(&Error{Kind: KindUnauthorized, Detail: detail}, opts)
}

// InsufficientPermissions reports that subject may not perform action.
func InsufficientPermissions(subject, action string, opts ...Option) *Error {
	return build(&Error{
		Kind:    KindInsufficientPermissions,
		Subject: subject,
		Action:  action,
	}, opts)
}

// CurrencyMismatch reports a binary operation between two currencies.
// Action names the operation ("add", "compare", ...).
func CurrencyMismatch(action, a, b string, opts ...Option) *Error {
	return build(&Error{
		Kind:       KindCurrencyMismatch,
		Action:     action,
		Currencies: []string{a, b},
	}, opts)
}

// CurrencyConversion reports a failed conversion between two currencies.
func CurrencyConversion(from, to string, cause error, opts ...Option) *Error {
	return build(&Error{
		Kind:       KindCurrencyConversion,
		Currencies: []string{from, to},
		Err:        cause,
	}, opts)
}

// Malformed reports input of the named form that could not be parsed.
func Malformed(what string, actual any, cause error, opts ...Option) *Error {
	return build(&Error{Kind: KindMalformed, Field: what, Actual: actual, Err: cause}, opts)
}

// Arithmetic reports an arithmetic operation that cannot produce an exact
// or defined result.
func Arithmetic(op, detail string, opts ...Option) *Error {
	return build(&Error{Kind: KindArithmetic, Action: op, Detail: detail}, opts)
}

// HTTP reports an unexpected HTTP status.
func HTTP(method, url string, status int, opts ...Option) *Error {
	return build(&Error{Kind: KindHTTP, Method: method, URL: url, Status: status}, opts)
}

// ExternalServiceHTTP reports a failed call to a named external service.
// Status is zero when no response was received.
func ExternalServiceHTTP(service string, status int, cause error, opts ...Option) *Error {
	return build(&Error{
		Kind:    KindExternalServiceHTTP,
		Service: service,
		Status:  status,
		Err:     cause,
	}, opts)
}

// Email reports a failure to compose or deliver an e-mail.
func Email(cause error, opts ...Option) *Error {
	return build(&Error{Kind: KindEmail, Err: cause}, opts)
}

// Hashing reports a hashing failure.
func Hashing(cause error, opts ...Option) *Error {
	return build(&Error{Kind: KindHashing, Err: cause}, opts)
}

// Encryption reports an encryption or decryption failure.
func Encryption(cause error, opts ...Option) *Error {
	return build(&Error{Kind: KindEncryption, Err: cause}, opts)
}

// Internal wraps an unexpected error.
func Internal(cause error, opts ...Option) *Error {
	return build(&Error{Kind: KindInternal, Err: cause}, opts)
}
