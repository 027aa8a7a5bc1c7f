package serverutils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret"

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(nopLogger{}))
	app.Get("/protected", NewJwtMiddleware(testSecret), func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"userId": UserId(ctx)})
	})
	return app
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJwtMiddleware(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "missing token",
			authHeader: "",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			authHeader: "Token abc",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			authHeader: "Bearer not.a.jwt",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name: "wrong secret",
			authHeader: "Bearer " + signToken(t, "other_secret", jwt.MapClaims{
				"sub": 42, "exp": time.Now().Add(time.Hour).Unix(),
			}),
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name: "expired token",
			authHeader: "Bearer " + signToken(t, testSecret, jwt.MapClaims{
				"sub": 42, "exp": time.Now().Add(-time.Hour).Unix(),
			}),
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name: "valid numeric subject",
			authHeader: "Bearer " + signToken(t, testSecret, jwt.MapClaims{
				"sub": 42, "email": "a@b.c", "exp": time.Now().Add(time.Hour).Unix(),
			}),
			wantStatus: fiber.StatusOK,
		},
		{
			name: "valid string subject",
			authHeader: "Bearer " + signToken(t, testSecret, jwt.MapClaims{
				"sub": "42", "exp": time.Now().Add(time.Hour).Unix(),
			}),
			wantStatus: fiber.StatusOK,
		},
		{
			name: "non-numeric string subject",
			authHeader: "Bearer " + signToken(t, testSecret, jwt.MapClaims{
				"sub": "someone", "exp": time.Now().Add(time.Hour).Unix(),
			}),
			wantStatus: fiber.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
