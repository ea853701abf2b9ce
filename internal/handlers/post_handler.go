package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"postpulse/dto"
	"postpulse/internal/repository"
	"postpulse/model"
	"postpulse/services"
)

type PostHandler struct {
	Feed  repository.FeedRepository
	Posts repository.PostRepository
	Users repository.UserRepository
}

// Feed godoc
// @Summary List the post feed
// @Description Joined, sorted, paginated posts; filter with ?tags=, order with ?sort=popularity
// @Tags posts
// @Produce json
// @Param tags query string false "comma-separated tag ids"
// @Param page query int false "zero-based page index"
// @Param size query int false "page size"
// @Param sort query string false "popularity for vote-tally order"
// @Router /posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	tagIDs, err := parseObjectIDs(splitCSV(c.Query("tags")))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid tag id"})
	}

	opts := model.FeedOptions{
		Tags: tagIDs,
		Sort: c.Query("sort"),
		// Absent or non-numeric page/size fall back to 0; size 0 yields an
		// empty page. Kept as-is, the frontend always sends both.
		Page: int64(c.QueryInt("page", 0)),
		Size: int64(c.QueryInt("size", 0)),
	}

	items, err := h.Feed.List(c.Context(), opts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(items)
}

// Get serves one joined post by id.
func (h *PostHandler) Get(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid post id"})
	}

	post, err := h.Feed.Get(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(post)
}

// Create stores a new post. The subscription gate is advisory and checked by
// the frontend through /post-ability; creation itself does not re-enforce it.
func (h *PostHandler) Create(c *fiber.Ctx) error {
	var body dto.CreatePostRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}

	tagIDs, err := parseObjectIDs(body.Tags)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid tag id"})
	}

	post := model.Post{
		Email:     body.Email,
		Name:      body.Name,
		Title:     body.Title,
		Body:      body.Body,
		Tags:      tagIDs,
		UpVotes:   []model.VoteRecord{},
		DownVotes: []model.VoteRecord{},
		Comments:  []bson.ObjectID{},
		Timestamp: time.Now().UnixMilli(),
	}

	id, err := h.Posts.Create(c.Context(), post)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"insertedId": id.Hex()})
}

// ListByAuthor pages through one author's posts, newest first.
func (h *PostHandler) ListByAuthor(c *fiber.Ctx) error {
	email := c.Params("email")
	page := int64(c.QueryInt("page", 0))
	size := int64(c.QueryInt("size", 0))

	posts, err := h.Posts.ListByAuthor(c.Context(), email, page, size)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(posts)
}

func (h *PostHandler) CountByAuthor(c *fiber.Ctx) error {
	count, err := h.Posts.CountByAuthor(c.Context(), c.Params("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"count": count})
}

// Count is the whole-collection estimate, no aggregation.
func (h *PostHandler) Count(c *fiber.Ctx) error {
	count, err := h.Posts.EstimatedCount(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"count": count})
}

// Ability runs the subscription gate for the given email.
func (h *PostHandler) Ability(c *fiber.Ctx) error {
	allowed, err := services.CanPost(c.Context(), h.Users, h.Posts, c.Params("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"status": allowed})
}

// ===== helpers =====

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseObjectIDs converts hex reference strings fail-closed: one bad id
// rejects the whole request instead of silently dropping a join key.
func parseObjectIDs(ids []string) ([]bson.ObjectID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	out := make([]bson.ObjectID, 0, len(ids))
	for _, h := range ids {
		oid, err := bson.ObjectIDFromHex(strings.TrimSpace(h))
		if err != nil {
			return nil, err
		}
		out = append(out, oid)
	}
	return out, nil
}
