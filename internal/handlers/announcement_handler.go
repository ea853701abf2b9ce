package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"postpulse/configs"
	"postpulse/dto"
	"postpulse/internal/repository"
	"postpulse/model"
)

type AnnouncementHandler struct {
	Announcements repository.AnnouncementRepository
}

// List serves the rolling window of recent announcements, newest first.
func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	since := time.Now().Add(-configs.AnnouncementWindow).UnixMilli()
	items, err := h.Announcements.ListSince(c.Context(), since)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(items)
}

func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateAnnouncementRequest
	if err := c.BodyParser(&body); err != nil || body.Announcement == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "announcement is required"})
	}

	id, err := h.Announcements.Insert(c.Context(), model.Announcement{
		Text:      body.Announcement,
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"insertedId": id.Hex()})
}
