package serverutils

import "github.com/gofiber/fiber/v2"

// StatusMessage is the body for mutation endpoints that only confirm an
// outcome (deletes, joins, leaves).
func StatusMessage(statusCode int, message string) fiber.Map {
	return fiber.Map{
		"statusCode": statusCode,
		"message":    message,
	}
}
