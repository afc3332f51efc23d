package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"prisma-ai/internal/api"
	"prisma-ai/internal/api/handlers"
	"prisma-ai/internal/migrations"
	"prisma-ai/internal/repository"
	"prisma-ai/internal/service"
	"prisma-ai/pkg/auth"
	"prisma-ai/pkg/config"
	"prisma-ai/pkg/logger"
	"prisma-ai/pkg/postgres"

	"go.uber.org/zap"
)

// @title Prisma AI API
// @version 1.0
// @description Document management service: AI-assisted text extraction, per-document chat, reminders and category notes

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Prisma AI service")

	ctx := context.Background()

	if err := migrations.Up(ctx, postgres.DSN(&cfg.Database)); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	docRepo := repository.NewDocumentRepository(db, appLogger)
	reminderRepo := repository.NewReminderRepository(db, appLogger)
	msgRepo := repository.NewChatMessageRepository(db, appLogger)
	noteRepo := repository.NewCategoryNoteRepository(db, appLogger)
	profileRepo := repository.NewProfileRepository(db, appLogger)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	llmService := service.NewLLMService(&cfg.OpenRouter, appLogger)
	analysisService := service.NewAnalysisService(docRepo, reminderRepo, llmService, appLogger)
	chatService := service.NewChatService(docRepo, msgRepo, llmService, &cfg.Chat, appLogger)
	docService := service.NewDocumentService(docRepo, msgRepo, appLogger)
	reminderService := service.NewReminderService(reminderRepo, appLogger)
	noteService := service.NewNoteService(noteRepo, appLogger)
	profileService := service.NewProfileService(profileRepo, docRepo, msgRepo, reminderRepo, appLogger)

	// Handlers
	h := &api.Handlers{
		Auth:     handlers.NewAuthHandler(authService, appLogger),
		Analyze:  handlers.NewAnalyzeHandler(analysisService, appLogger),
		Chat:     handlers.NewChatHandler(chatService, appLogger),
		Document: handlers.NewDocumentHandler(docService, appLogger),
		Reminder: handlers.NewReminderHandler(reminderService, appLogger),
		Note:     handlers.NewNoteHandler(noteService, appLogger),
		Profile:  handlers.NewProfileHandler(profileService, appLogger),
	}

	app := api.SetupRouter(h, jwtManager, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
