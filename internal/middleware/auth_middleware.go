package middleware

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/arzan03/ProductHub/internal/services"
	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the fiber.Ctx locals key holding the authenticated user id.
const UserIDKey = "userId"

type TokenParser interface {
	ParseJWT(token string) (*services.Claims, error)
}

// AuthMiddleware requires "Authorization: Bearer <token>" and rejects the
// request with 401 unless the token verifies.
func AuthMiddleware(tokens TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorized(c)
		}

		// Second whitespace-separated field; anything shorter yields "" and
		// fails verification below.
		var tokenString string
		if fields := strings.Fields(header); len(fields) > 1 {
			tokenString = fields[1]
		}

		claims, err := tokens.ParseJWT(tokenString)
		if err != nil {
			slog.Warn("rejected bearer token",
				"err", err,
				"path", c.Path(),
				"request_id", c.Locals("requestid"))
			return unauthorized(c)
		}

		c.Locals(UserIDKey, claims.ID)
		return c.Next()
	}
}

// UserID returns the id stored by AuthMiddleware.
func UserID(c *fiber.Ctx) (string, error) {
	id, ok := c.Locals(UserIDKey).(string)
	if !ok || id == "" {
		return "", errors.New("no authenticated user in request context")
	}
	return id, nil
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized User"})
}
