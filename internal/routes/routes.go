package routes

import (
	"github.com/gofiber/fiber/v2"

	"postpulse/internal/handlers"
	"postpulse/internal/middleware"
	"postpulse/internal/payments"
	"postpulse/internal/repository"
)

// Deps holds shared dependencies to inject into handlers.
type Deps struct {
	Users         repository.UserRepository
	Tags          repository.TagRepository
	Posts         repository.PostRepository
	Feed          repository.FeedRepository
	Comments      repository.CommentRepository
	Payments      repository.PaymentRepository
	Announcements repository.AnnouncementRepository
	Intents       payments.IntentCreator

	Secret     string
	Production bool
}

// Register mounts all HTTP routes in one place.
func Register(app *fiber.App, d Deps) {
	session := middleware.VerifyToken(d.Secret)
	admin := middleware.VerifyAdmin(d.Users)

	auth := &handlers.AuthHandler{Secret: d.Secret, Production: d.Production}
	posts := &handlers.PostHandler{Feed: d.Feed, Posts: d.Posts, Users: d.Users}
	comments := &handlers.CommentHandler{Comments: d.Comments, Posts: d.Posts}
	users := &handlers.UserHandler{Users: d.Users}
	tags := &handlers.TagHandler{Tags: d.Tags}
	pay := &handlers.PaymentHandler{Payments: d.Payments, Users: d.Users, Intents: d.Intents}
	ann := &handlers.AnnouncementHandler{Announcements: d.Announcements}

	// Liveness
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Post pulse server is running")
	})

	// Session
	app.Post("/jwt", auth.Login)
	app.Get("/logout", auth.Logout)

	// Posts / feed
	app.Get("/posts", posts.List)
	app.Post("/posts", session, posts.Create)
	app.Get("/posts/:email", session, posts.ListByAuthor)
	app.Get("/post/:id", posts.Get)
	app.Get("/posts-count", posts.Count)
	app.Get("/posts-count/:email", posts.CountByAuthor)
	app.Get("/post-ability/:email", posts.Ability)

	// Votes
	app.Post("/votes/:postId", handlers.VoteHandler(d.Posts))

	// Comments
	app.Get("/comments", comments.ListAll)
	app.Post("/comments", session, comments.Create)
	app.Get("/comments/:postId", comments.ListByPost)
	app.Delete("/comments/:id", comments.Delete)
	app.Get("/comments-restore/:id", comments.Restore)
	app.Post("/report/:commentId", session, comments.Report)
	app.Get("/reported-comments", session, admin, comments.ListReported)

	// Tags
	app.Get("/tags", tags.List)
	app.Post("/tags", session, admin, tags.Create)

	// Users
	app.Get("/users", session, admin, users.List)
	app.Post("/users", users.Register)
	app.Get("/user/:email", users.GetByEmail)
	// No admin gate here, matching the original surface (known gap, see
	// DESIGN.md).
	app.Post("/user-role", users.SetRole)

	// Payments
	app.Post("/create-payment-intent", session, pay.CreateIntent)
	app.Post("/payments", session, pay.Record)

	// Announcements
	app.Get("/announcements", ann.List)
	app.Post("/announcements", session, admin, ann.Create)
}
