package apperrors

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestErrorKindMatching(t *testing.T) {
	err := NewNotFound("note %d does not exist", 7)

	if !errors.Is(err, ErrNotFound) {
		t.Error("constructed error must match its sentinel")
	}
	if errors.Is(err, ErrForbidden) {
		t.Error("constructed error must not match other sentinels")
	}
	if err.Error() != "note 7 does not exist" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: NewNotFound("x"), want: fiber.StatusNotFound},
		{name: "forbidden", err: NewForbidden("x"), want: fiber.StatusForbidden},
		{name: "bad request", err: NewBadRequest("x"), want: fiber.StatusBadRequest},
		{name: "unauthorized", err: NewUnauthorized("x"), want: fiber.StatusUnauthorized},
		{name: "internal", err: NewInternal("x"), want: fiber.StatusInternalServerError},
		{name: "plain error", err: errors.New("x"), want: fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusCode(tt.err); got != tt.want {
				t.Errorf("StatusCode = %d, want %d", got, tt.want)
			}
		})
	}
}
