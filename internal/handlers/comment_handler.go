package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"postpulse/dto"
	"postpulse/internal/repository"
	"postpulse/model"
	"postpulse/services"
)

type CommentHandler struct {
	Comments repository.CommentRepository
	Posts    repository.PostRepository
}

// POST /comments
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateCommentRequest
	if err := c.BodyParser(&body); err != nil || body.Comment == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "comment required"})
	}

	postID, err := bson.ObjectIDFromHex(body.PostID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid post id"})
	}

	created, err := services.AddComment(c.Context(), h.Comments, h.Posts, model.Comment{
		PostID: postID,
		Email:  body.Email,
		Text:   body.Comment,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GET /comments
func (h *CommentHandler) ListAll(c *fiber.Ctx) error {
	views, err := h.Comments.ListAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(views)
}

// GET /comments/:postId — the post's live comment list, author-joined.
// Reported comments were pulled from the list, so they never show up here.
func (h *CommentHandler) ListByPost(c *fiber.Ctx) error {
	postID, err := bson.ObjectIDFromHex(c.Params("postId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid post id"})
	}

	post, err := h.Posts.Get(c.Context(), postID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if post == nil {
		return c.JSON([]model.CommentView{})
	}

	views, err := h.Comments.ListByIDs(c.Context(), post.Comments)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(views)
}

// DELETE /comments/:id
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid comment id"})
	}
	if err := h.Comments.Delete(c.Context(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"deleted": true})
}

// POST /report/:commentId
func (h *CommentHandler) Report(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("commentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid comment id"})
	}

	var body dto.ReportCommentRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}

	found, err := services.ReportComment(c.Context(), h.Comments, h.Posts, id, body.Feedback)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"reported": found})
}

// GET /comments-restore/:id
func (h *CommentHandler) Restore(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid comment id"})
	}

	found, err := services.RestoreComment(c.Context(), h.Comments, h.Posts, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"restored": found})
}

// GET /reported-comments — the moderation queue, admin only.
func (h *CommentHandler) ListReported(c *fiber.Ctx) error {
	page := int64(c.QueryInt("page", 0))
	size := int64(c.QueryInt("size", 0))

	comments, err := h.Comments.ListReported(c.Context(), page, size)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(comments)
}
