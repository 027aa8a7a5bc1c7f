package serverutils

import (
	"errors"

	"studysnap-be/internal/pkg/apperrors"
	"studysnap-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// ErrorHandlerMiddleware converts typed domain errors into the
// {statusCode, message} body. Controllers return errors untouched; this is
// the only place error kind maps to HTTP status.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := apperrors.StatusCode(err)
		message := err.Error()

		// Fiber's own errors (route not found, body too large) keep their
		// status but share the response shape.
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}

		if status >= fiber.StatusInternalServerError {
			log.Error("http", "request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err.Error(),
			})
			// Unexpected collaborator failures keep details in the log only.
			var appErr *apperrors.AppError
			if !errors.As(err, &appErr) {
				message = "Internal server error"
			}
		}

		return ctx.Status(status).JSON(ErrorResponse{
			StatusCode: status,
			Message:    message,
		})
	}
}
