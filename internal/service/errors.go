package service

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField  = errors.New("missing field")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrNotFound      = errors.New("not found")
	ErrStorage       = errors.New("storage error")
)

const (
	missingFieldMessage  = "Title, Category, Date, and Amount are required."
	invalidDateMessage   = "Date must be a valid calendar date (YYYY-MM-DD)."
	invalidAmountMessage = "Amount must be a positive number."
)

// Error is returned by every RecordService operation. Message is safe to show
// to end users; Cause is only for logs.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// ErrorKind names the failure category of err as exposed over the API.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrMissingField):
		return "MissingField"
	case errors.Is(err, ErrInvalidAmount):
		return "InvalidAmount"
	case errors.Is(err, ErrNotFound):
		return "NotFound"
	default:
		return "StorageError"
	}
}

// PublicMessage returns the user-facing message of err, never the cause.
func PublicMessage(err error) string {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Message
	}
	return "Server Error"
}

func missingField(message string) error {
	return &Error{Kind: ErrMissingField, Message: message}
}

func invalidAmount() error {
	return &Error{Kind: ErrInvalidAmount, Message: invalidAmountMessage}
}

func notFound(kind Kind) error {
	return &Error{Kind: ErrNotFound, Message: kind.Title() + " not found."}
}

// storageFailure wraps a persistence or context error. noun is the object
// of the failed verb, e.g. "income" or "incomes".
func storageFailure(verb, noun string, cause error) error {
	return &Error{
		Kind:    ErrStorage,
		Message: fmt.Sprintf("Server Error: Could not %s %s.", verb, noun),
		Cause:   cause,
	}
}
