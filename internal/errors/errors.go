// Package errors holds the dashboard's error taxonomy. Errors are plain Go
// errors marked with one of the sentinels below, so callers classify them
// with errors.Is regardless of how much context was wrapped around them.
package errors

import (
	"net/http"

	"github.com/cockroachdb/errors"
)

var (
	ErrNotFound        = errors.New("resource not found")
	ErrValidation      = errors.New("validation error")
	ErrDatabase        = errors.New("database error")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrSystem          = errors.New("system error")
)

// statusCodes is ordered; the first matching mark wins.
var statusCodes = []struct {
	mark   error
	status int
}{
	{ErrValidation, http.StatusUnprocessableEntity},
	{ErrNotFound, http.StatusNotFound},
	{ErrUnauthenticated, http.StatusUnauthorized},
	{ErrDatabase, http.StatusInternalServerError},
	{ErrSystem, http.StatusInternalServerError},
}

// ErrorBuilder provides a fluent interface for building errors.
// Mark must be the last call in the chain.
type ErrorBuilder struct {
	err error
}

// NewError starts a new error builder chain.
func NewError(msg string) *ErrorBuilder {
	return &ErrorBuilder{err: errors.New(msg)}
}

// WithError starts a builder chain with an existing error.
func WithError(err error) *ErrorBuilder {
	return &ErrorBuilder{err: err}
}

// WithMessage adds internal context to the error.
func (b *ErrorBuilder) WithMessage(msg string) *ErrorBuilder {
	b.err = errors.WithMessage(b.err, msg)
	return b
}

// WithHint attaches a message that is safe to show to the user.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.err = errors.WithHint(b.err, hint)
	return b
}

// WithHintf is WithHint with formatting.
func (b *ErrorBuilder) WithHintf(format string, args ...any) *ErrorBuilder {
	b.err = errors.WithHintf(b.err, format, args...)
	return b
}

// Mark marks the error with a sentinel and returns it.
func (b *ErrorBuilder) Mark(reference error) error {
	b.err = errors.Mark(b.err, reference)
	return b.err
}

func Is(err, reference error) bool {
	return errors.Is(err, reference)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsDatabase(err error) bool {
	return errors.Is(err, ErrDatabase)
}

func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrUnauthenticated)
}

// Hint returns the first user-facing hint attached to err, or fallback.
func Hint(err error, fallback string) string {
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		return hints[0]
	}
	return fallback
}

// HTTPStatusFromErr maps a marked error to an HTTP status code.
func HTTPStatusFromErr(err error) int {
	for _, sc := range statusCodes {
		if errors.Is(err, sc.mark) {
			return sc.status
		}
	}
	return http.StatusInternalServerError
}
