package handlers

import (
	"github.com/gofiber/fiber/v2"

	"postpulse/internal/repository"
	"postpulse/model"
)

type TagHandler struct {
	Tags repository.TagRepository
}

func (h *TagHandler) List(c *fiber.Ctx) error {
	tags, err := h.Tags.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(tags)
}

// Create stores a tag; tags are immutable afterwards.
func (h *TagHandler) Create(c *fiber.Ctx) error {
	var body model.Tag
	if err := c.BodyParser(&body); err != nil || body.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name is required"})
	}

	id, err := h.Tags.Insert(c.Context(), model.Tag{Name: body.Name, Icon: body.Icon})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"insertedId": id.Hex()})
}
