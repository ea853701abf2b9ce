package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"postpulse/dto"
	"postpulse/internal/repository"
	"postpulse/services"
)

// VoteHandler appends an upvote or downvote record to a post. An unknown
// vote_type answers 200 with a message body, per the service convention.
func VoteHandler(posts repository.PostRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID, err := bson.ObjectIDFromHex(c.Params("postId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid post id"})
		}

		var body dto.VoteRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		status, payload := services.Vote(c.Context(), posts, postID, body)
		return c.Status(status).JSON(payload)
	}
}
