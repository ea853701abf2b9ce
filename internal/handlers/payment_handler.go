package handlers

import (
	"math"

	"github.com/gofiber/fiber/v2"

	"postpulse/dto"
	"postpulse/internal/payments"
	"postpulse/internal/repository"
	"postpulse/services"
)

type PaymentHandler struct {
	Payments repository.PaymentRepository
	Users    repository.UserRepository
	Intents  payments.IntentCreator
}

// CreateIntent asks the provider for a payment intent. A missing price
// answers 200 with a message body rather than a 4xx.
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var body dto.PaymentIntentRequest
	if err := c.BodyParser(&body); err != nil || body.Price == nil {
		return c.JSON(dto.ErrorResponse{Message: "price is required"})
	}

	amountCents := int64(math.Round(*body.Price * 100))
	clientSecret, err := h.Intents.CreateIntent(c.Context(), amountCents)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"clientSecret": clientSecret})
}

// Record stores a completed payment and upgrades the payer to Gold.
func (h *PaymentHandler) Record(c *fiber.Ctx) error {
	var body dto.PaymentRequest
	if err := c.BodyParser(&body); err != nil || body.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "email is required"})
	}

	id, err := services.CompletePayment(c.Context(), h.Payments, h.Users, body.Email, body.Price)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"insertedId": id.Hex()})
}
