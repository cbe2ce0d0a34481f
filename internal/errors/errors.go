// Package errors defines the domain error taxonomy shared by all services.
// Handlers translate a DomainError's kind into an HTTP status at the edge;
// services never leak store internals through these errors.
package errors

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies a domain error.
type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindBadRequest Kind = "bad_request"
	KindConflict   Kind = "conflict"
	KindInternal   Kind = "internal"
)

// DomainError is a structured service error with a stable code and a
// caller-facing message.
type DomainError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NotFound builds a DomainError of kind NotFound.
func NotFound(code, message string) *DomainError {
	return &DomainError{Kind: KindNotFound, Code: code, Message: message}
}

// BadRequest builds a DomainError of kind BadRequest.
func BadRequest(code, message string) *DomainError {
	return &DomainError{Kind: KindBadRequest, Code: code, Message: message}
}

// Conflict builds a DomainError of kind Conflict.
func Conflict(code, message string) *DomainError {
	return &DomainError{Kind: KindConflict, Code: code, Message: message}
}

// Internal builds a DomainError of kind Internal.
func Internal(code, message string) *DomainError {
	return &DomainError{Kind: KindInternal, Code: code, Message: message}
}

// HTTPStatus maps an error to an HTTP status code. Unknown errors are
// treated as internal failures.
func HTTPStatus(err error) int {
	var de *DomainError
	if !stderrors.As(err, &de) {
		return fiber.StatusInternalServerError
	}
	switch de.Kind {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindBadRequest:
		return fiber.StatusBadRequest
	case KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
