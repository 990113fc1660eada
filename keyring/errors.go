package keyring

import "errors"

// Kind is a stable category for programmatic error handling.
//
// These categories are intended to remain stable across versions.
// Callers should branch on Kind rather than matching error strings.
//
// NOTE: Error() strings are intentionally kept human-readable and may evolve.
// Use errors.As to extract *Error for structured handling.
type Kind string

const (
	// KindInvalidMnemonic reports a phrase that failed wordlist or checksum
	// validation. Not retried; the original parse failure is attached as Cause.
	KindInvalidMnemonic Kind = "InvalidMnemonic"

	// KindPrivateKey reports a failed master or child key construction.
	// Rare for a valid mnemonic, but always surfaced, never panicked.
	KindPrivateKey Kind = "PrivateKey"

	// KindInvalidKey reports a lookup that found no entry for the address.
	// Recoverable; callers may re-derive or report an unknown account.
	KindInvalidKey Kind = "InvalidKey"

	// KindInternal reports an invariant violation inside the library.
	KindInternal Kind = "Internal"
)

// Error is the library's structured error type.
//
// Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, msg string) error {
	return &Error{Kind: kind, Message: msg}
}

func wrapError(kind Kind, msg string, cause error) error {
	if cause == nil {
		return newError(kind, msg)
	}
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
