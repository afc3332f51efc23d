package api

import (
	"prisma-ai/docs"
	"prisma-ai/internal/api/handlers"
	"prisma-ai/pkg/auth"
	"prisma-ai/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Analyze  *handlers.AnalyzeHandler
	Chat     *handlers.ChatHandler
	Document *handlers.DocumentHandler
	Reminder *handlers.ReminderHandler
	Note     *handlers.NoteHandler
	Profile  *handlers.ProfileHandler
}

func SetupRouter(h *Handlers, jwtManager *auth.JWTManager, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		// Base64 uploads run to ~14 MB for a 10 MB file.
		BodyLimit: 16 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger - importing the docs package registers the OpenAPI document via init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes (public)
	authGroup := app.Group("/user/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	documents := protected.Group("/documents")
	documents.Post("/analyze", h.Analyze.AnalyzeDocument)
	documents.Post("/chat", h.Chat.ChatDocument)
	documents.Get("", h.Document.ListDocuments)
	documents.Get("/counts", h.Document.CategoryCounts)
	documents.Get("/:id", h.Document.GetDocument)
	documents.Delete("/:id", h.Document.DeleteDocument)
	documents.Get("/:id/messages", h.Document.ChatHistory)

	reminders := protected.Group("/reminders")
	reminders.Get("", h.Reminder.ListReminders)
	reminders.Get("/pending", h.Reminder.ListPendingReminders)
	reminders.Post("", h.Reminder.CreateReminder)
	reminders.Post("/:id/acknowledge", h.Reminder.AcknowledgeReminder)

	notes := protected.Group("/notes")
	notes.Get("/:category", h.Note.GetNote)
	notes.Put("/:category", h.Note.SaveNote)

	profile := protected.Group("/profile")
	profile.Get("", h.Profile.GetProfile)
	profile.Put("", h.Profile.SaveProfile)
	profile.Get("/stats", h.Profile.ProfileStats)

	return app
}
