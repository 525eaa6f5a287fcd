package getbd

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can branch on it instead of matching messages.
type Kind string

const (
	// KindConfig means the client could not be constructed (missing API key).
	KindConfig Kind = "config"

	// KindValidation means registrant input was rejected before any network call.
	KindValidation Kind = "validation"

	// KindTransport covers connection failures, timeouts and body encoding problems.
	KindTransport Kind = "transport"

	// KindDecode means the provider payload did not match the expected schema.
	KindDecode Kind = "decode"

	// KindAuth means the provider rejected the API key.
	KindAuth Kind = "auth"

	// KindRegistration means the provider refused to create or process an order.
	KindRegistration Kind = "registration"

	// KindProvider means the provider answered success=false on a plain operation.
	KindProvider Kind = "provider"

	// KindUnsupported is returned for operations this registrar never performs.
	KindUnsupported Kind = "unsupported"
)

// Error is the single error type returned by the client and the registrar façade.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("getbd %s [%s]: %s: %v", e.Op, e.Kind, e.Message, e.Err)
	case e.Op != "":
		return fmt.Sprintf("getbd %s [%s]: %s", e.Op, e.Kind, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("getbd [%s]: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("getbd [%s]: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, op, msg string, err error) *Error {
	return &Error{Kind: kind, Op: op, Message: msg, Err: err}
}

// KindOf extracts the Kind of err, or "" when err is nil or foreign.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries kind k.
func IsKind(err error, k Kind) bool { return err != nil && KindOf(err) == k }

// Failure flattens err into the status/message pair a hosting platform shows to operators.
// A nil error yields ok=true. Foreign errors are reported as transport failures.
func Failure(err error) (ok bool, kind Kind, message string) {
	if err == nil {
		return true, "", ""
	}
	var e *Error
	if errors.As(err, &e) {
		if e.Message != "" {
			return false, e.Kind, e.Message
		}
		return false, e.Kind, e.Kind.message()
	}
	return false, KindTransport, err.Error()
}

// message is the operator-facing fallback when an error carries no text.
func (k Kind) message() string {
	switch k {
	case KindConfig:
		return "registrar is not configured"
	case KindValidation:
		return "invalid registrant data"
	case KindTransport:
		return "could not reach Get BD"
	case KindDecode:
		return "unexpected response from Get BD"
	case KindAuth:
		return "API Key is invalid"
	case KindRegistration:
		return "domain registration failed"
	case KindProvider:
		return "provider request failed"
	case KindUnsupported:
		return "operation not supported"
	}
	return "unknown error"
}

// ValidationError describes rejected registrant input. Parsed and Raw are kept
// verbatim so operators can see what the platform actually sent.
type ValidationError struct {
	Field  string
	Reason string
	Parsed string
	Raw    string
}

func (e *ValidationError) Error() string {
	if e.Raw == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s (parsed %q, raw %s)", e.Field, e.Reason, e.Parsed, e.Raw)
}

// ErrUnexpectedPayload indicates the response data was not the expected object.
type ErrUnexpectedPayload string

func (e ErrUnexpectedPayload) Error() string {
	return fmt.Sprintf("unexpected Get BD payload, want %s", string(e))
}
