package middleware

import (
	"github.com/gofiber/fiber/v2"

	"postpulse/configs"
	"postpulse/internal/repository"
	"postpulse/internal/token"
	"postpulse/model"
)

const unauthorizedMessage = "Unauthorized access!"

// Locals keys set by the gates.
const (
	LocalEmail = "email"
	LocalName  = "name"
)

// VerifyToken rejects the request before the handler runs unless the session
// cookie carries a valid token. Verified claims land in Locals.
func VerifyToken(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookie := c.Cookies(configs.CookieName)
		if cookie == "" {
			return unauthorized(c)
		}
		claims, err := token.Verify(secret, cookie)
		if err != nil {
			return unauthorized(c)
		}
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalName, claims.Name)
		return c.Next()
	}
}

// VerifyAdmin is the second gate for admin-only routes: it resolves the
// authenticated caller's user record and requires the admin role. Must be
// mounted after VerifyToken.
func VerifyAdmin(users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals(LocalEmail).(string)
		if email == "" {
			return unauthorized(c)
		}
		user, err := users.FindByEmail(c.Context(), email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
		if user == nil || user.Role != model.RoleAdmin {
			return unauthorized(c)
		}
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": unauthorizedMessage})
}
