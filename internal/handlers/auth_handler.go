package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"postpulse/configs"
	"postpulse/dto"
	"postpulse/internal/token"
)

type AuthHandler struct {
	Secret     string
	Production bool
}

// cookie builds the session cookie. Attributes follow the runtime
// environment: cross-site (SameSite=None, Secure) in production where the
// frontend lives on another origin, strict and plain-HTTP friendly in dev.
func (h *AuthHandler) cookie(value string, expires time.Time) *fiber.Cookie {
	sameSite := fiber.CookieSameSiteStrictMode
	if h.Production {
		sameSite = fiber.CookieSameSiteNoneMode
	}
	return &fiber.Cookie{
		Name:     configs.CookieName,
		Value:    value,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.Production,
		SameSite: sameSite,
	}
}

// Login godoc
// @Summary Issue a session token
// @Description Signs the posted identity claims into a 1h cookie token
// @Tags auth
// @Accept json
// @Produce json
// @Router /jwt [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}
	if body.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "email is required"})
	}

	tok, err := token.Issue(h.Secret, body.Email, body.Name, configs.TokenTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	c.Cookie(h.cookie(tok, time.Now().Add(configs.TokenTTL)))
	return c.JSON(fiber.Map{"success": true})
}

// Logout clears the session cookie. Idempotent: logging out twice is fine.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	cookie := h.cookie("", time.Now().Add(-time.Hour))
	cookie.MaxAge = -1
	c.Cookie(cookie)
	return c.JSON(fiber.Map{"success": true})
}
