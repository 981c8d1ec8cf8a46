package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"legal-chatbot/internal/api"
	"legal-chatbot/internal/api/handlers"
	"legal-chatbot/internal/repository"
	"legal-chatbot/internal/service"
	"legal-chatbot/pkg/config"
	"legal-chatbot/pkg/logger"
	"legal-chatbot/pkg/postgres"

	"go.uber.org/zap"
)

// @title Legal Chatbot API
// @version 1.0
// @description Retrieval-augmented legal and accounting assistant for North Macedonia
// @host localhost:8080
// @BasePath /

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
	appLogger.Info("Starting legal chatbot service")

	ctx := context.Background()

	var docRepo repository.DocumentRepository
	switch cfg.Documents.Backend {
	case "postgres":
		db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		docRepo = repository.NewPostgresDocumentRepository(db, appLogger)
	default:
		docRepo = repository.NewSeededMemoryRepository(appLogger)
	}
	appLogger.Info("Document store ready", zap.String("backend", cfg.Documents.Backend))

	var llmClient service.CompletionClient
	switch cfg.LLM.Provider {
	case "gigachat":
		client, err := service.NewGigaChatClient(ctx, &cfg.GigaChat, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize GigaChat client", zap.Error(err))
		}
		defer client.Close()
		llmClient = client
	default:
		llmClient = service.NewOpenAIClient(&cfg.OpenAI, appLogger)
	}
	appLogger.Info("Completion backend ready",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.Chatbot.Model),
	)

	chatService := service.NewChatService(docRepo, llmClient, &cfg.Chatbot, appLogger)

	chatHandler := handlers.NewChatHandler(chatService, appLogger)
	docHandler := handlers.NewDocumentHandler(docRepo, appLogger)

	app := api.SetupRouter(&cfg.Server, chatHandler, docHandler)

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
