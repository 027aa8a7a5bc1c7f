package serverutils

import (
	"strconv"

	"studysnap-be/internal/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// NewJwtMiddleware verifies bearer tokens signed by the external auth
// service. The payload carries `sub` (user id) and `email`; both are attached
// to request locals for controllers.
func NewJwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return apperrors.NewUnauthorized("Missing token")
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return apperrors.NewUnauthorized("Invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return apperrors.NewUnauthorized("Invalid claims")
		}

		userId, ok := subjectToUserId(claims["sub"])
		if !ok {
			return apperrors.NewUnauthorized("Invalid subject claim")
		}

		ctx.Locals("user_id", userId)
		if email, ok := claims["email"].(string); ok {
			ctx.Locals("email", email)
		}

		return ctx.Next()
	}
}

// subjectToUserId tolerates both numeric and string subjects; JSON numbers
// decode as float64.
func subjectToUserId(sub interface{}) (int64, bool) {
	switch v := sub.(type) {
	case float64:
		return int64(v), true
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}

// UserId extracts the authenticated user id set by the JWT middleware.
func UserId(ctx *fiber.Ctx) int64 {
	id, _ := ctx.Locals("user_id").(int64)
	return id
}
