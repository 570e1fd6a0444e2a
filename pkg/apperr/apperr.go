// Package apperr defines the error kinds the API reports to clients.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindMissingField
	KindUnauthorized
	KindCustom
	KindNotFound
	KindAlreadyExists
	KindInvalidField
)

// Error is an error with a client-facing message and an HTTP status.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Wrap attaches a cause that is logged but never sent to clients.
func (e *Error) Wrap(err error) *Error {
	cp := *e
	cp.Err = err
	return &cp
}

func MissingField(field string) *Error {
	return &Error{Kind: KindMissingField, Status: http.StatusBadRequest, Message: "Missing field: " + field}
}

func Unauthorized(msg string) *Error {
	if msg == "" {
		msg = "Unauthorized"
	}
	return &Error{Kind: KindUnauthorized, Status: http.StatusUnauthorized, Message: msg}
}

// Custom reports a domain rule violation with an explicit status.
func Custom(status int, msg string) *Error {
	return &Error{Kind: KindCustom, Status: status, Message: msg}
}

// Forbidden is the Custom kind used for domain rules.
func Forbidden(msg string) *Error {
	return Custom(http.StatusForbidden, msg)
}

func NotFound(what string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: what + " not found"}
}

func AlreadyExists(what string) *Error {
	return &Error{Kind: KindAlreadyExists, Status: http.StatusConflict, Message: what + " already exists"}
}

func InvalidField(field string) *Error {
	return &Error{Kind: KindInvalidField, Status: http.StatusUnprocessableEntity, Message: "Invalid field: " + field}
}

// As returns the *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// StatusOf maps err to an HTTP status, 500 for unrecognized errors.
func StatusOf(err error) int {
	if e, ok := As(err); ok {
		return e.Status
	}
	return http.StatusInternalServerError
}

// KindOf returns err's kind, KindInternal for unrecognized errors.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindInternal
}
