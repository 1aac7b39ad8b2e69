package middleware

import (
	"strings"

	"github.com/fadilmartias/job-wingman/internal/auth"
	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the locals key under which the authenticated user's ID is
// stored for downstream handlers.
const UserIDKey = "userID"

// BearerAuth validates the Authorization header on protected routes.
// A missing header is 401, a present but invalid or expired token is 403.
func BearerAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.SendStatus(fiber.StatusUnauthorized)
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		userID, err := auth.ValidateToken(secret, tokenString)
		if err != nil {
			return c.SendStatus(fiber.StatusForbidden)
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}
