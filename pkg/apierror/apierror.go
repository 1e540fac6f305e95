package apierror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not-found"
	KindInternal   Kind = "internal"
)

// Error is a tagged service error so that the HTTP layer can map failures to
// status codes without inspecting message text
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewValidation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewInternal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}

// KindOf returns the kind attached to err, defaulting to internal for
// anything untagged
func KindOf(err error) Kind {
	var apiError *Error
	if errors.As(err, &apiError) {
		return apiError.Kind
	}

	return KindInternal
}

func StatusCode(err error) int {
	var fiberError *fiber.Error
	if errors.As(err, &fiberError) {
		return fiberError.Code
	}

	switch KindOf(err) {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
