package analyzer

import "fmt"

// Kind categorizes analysis failures for HTTP status mapping.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidInput
	KindUnreachable
	KindTimeout
	KindTooLarge
	KindTooManyRedirects
)

// Error is the single error type callers receive. Message is user-facing
// and surfaced verbatim by the client, so it must stay safe and actionable;
// Cause carries the internal detail for logs only.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

func invalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}
