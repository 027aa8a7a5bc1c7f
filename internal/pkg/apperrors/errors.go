package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Sentinel error kinds. Services wrap these with context via the New*
// constructors; the error handler middleware matches with errors.Is.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrForbidden    = errors.New("permission denied")
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal server error")
)

type AppError struct {
	Kind    error
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Kind
}

func NewNotFound(format string, args ...any) error {
	return &AppError{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewForbidden(format string, args ...any) error {
	return &AppError{Kind: ErrForbidden, Message: fmt.Sprintf(format, args...)}
}

func NewBadRequest(format string, args ...any) error {
	return &AppError{Kind: ErrBadRequest, Message: fmt.Sprintf(format, args...)}
}

func NewUnauthorized(format string, args ...any) error {
	return &AppError{Kind: ErrUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func NewInternal(format string, args ...any) error {
	return &AppError{Kind: ErrInternal, Message: fmt.Sprintf(format, args...)}
}

// StatusCode maps an error to its HTTP status. Unknown errors are treated as
// internal failures.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrBadRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}
