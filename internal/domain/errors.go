package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure so the HTTP edge can map it to a status code.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
)

// Error is the tagged failure value every service returns. Messages holds
// one entry per problem; validation failures may carry several.
type Error struct {
	Kind     Kind
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, "; ")
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Messages: []string{fmt.Sprintf(format, args...)}}
}

func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Messages: []string{fmt.Sprintf(format, args...)}}
}

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Messages: []string{fmt.Sprintf(format, args...)}}
}

// ValidationErrors wraps a list of per-field messages.
func ValidationErrors(messages []string) *Error {
	return &Error{Kind: KindValidation, Messages: messages}
}

func Internalf(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Messages: []string{fmt.Sprintf(format, args...)}}
}

// KindOf extracts the kind from err. Anything that is not a tagged *Error
// (store failures, serialization) counts as internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessagesOf returns the message list for the response envelope.
func MessagesOf(err error) []string {
	var e *Error
	if errors.As(err, &e) {
		return e.Messages
	}
	return []string{err.Error()}
}
