package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	"postpulse/bootstrap"
	"postpulse/configs"
	"postpulse/database"
	"postpulse/internal/payments"
	"postpulse/internal/repository"
	"postpulse/internal/routes"
)

func init() {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}

func main() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	client := database.ConnectMongo()
	defer database.DisconnectMongo(client)
	db := client.Database(database.DBName())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := bootstrap.EnsureIndexes(ctx, db); err != nil {
		cancel()
		log.Fatalf("ensure indexes failed: %v", err)
	}
	cancel()

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = configs.DefaultOrigin
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowCredentials: true,
	}))

	app.Get("/docs/*", swagger.HandlerDefault)

	routes.Register(app, routes.Deps{
		Users:         repository.NewMongoUserRepo(db),
		Tags:          repository.NewMongoTagRepo(db),
		Posts:         repository.NewMongoPostRepo(db),
		Feed:          repository.NewMongoFeedRepo(db),
		Comments:      repository.NewMongoCommentRepo(db),
		Payments:      repository.NewMongoPaymentRepo(db),
		Announcements: repository.NewMongoAnnouncementRepo(db),
		Intents:       payments.NewClient(os.Getenv("PAYMENT_SECRET_KEY")),
		Secret:        secret,
		Production:    configs.IsProduction(),
	})

	// Release the listener, then the mongo client, on SIGINT/SIGTERM.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Println("shutdown:", err)
		}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Printf("listening at http://localhost:%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
