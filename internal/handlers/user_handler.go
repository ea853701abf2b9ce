package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"postpulse/dto"
	"postpulse/internal/repository"
	"postpulse/model"
)

type UserHandler struct {
	Users repository.UserRepository
}

// Register godoc
// @Summary Register a user
// @Description Upsert-safe: registering an existing email is a no-op that answers insertedId null
// @Tags users
// @Accept json
// @Produce json
// @Router /users [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil || body.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "email is required"})
	}

	existing, err := h.Users.FindByEmail(c.Context(), body.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if existing != nil {
		return c.JSON(fiber.Map{"message": "User already exists", "insertedId": nil})
	}

	id, err := h.Users.Insert(c.Context(), model.User{
		Name:         body.Name,
		Email:        body.Email,
		Subscription: model.TierBronze,
		Timestamp:    time.Now().UnixMilli(),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"insertedId": id.Hex()})
}

// List serves every user record; admin only.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.Users.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(users)
}

func (h *UserHandler) GetByEmail(c *fiber.Ctx) error {
	user, err := h.Users.FindByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(user)
}

// SetRole updates a user's role. This route ships without an admin gate,
// matching the original surface; see DESIGN.md before changing that.
func (h *UserHandler) SetRole(c *fiber.Ctx) error {
	var body dto.RoleUpdateRequest
	if err := c.BodyParser(&body); err != nil || body.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "email is required"})
	}

	modified, err := h.Users.SetRole(c.Context(), body.Email, body.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"modifiedCount": modified})
}
