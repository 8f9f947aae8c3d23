package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/turtlefinance/meeting-sync/pkg/validator"

	"github.com/turtlefinance/meeting-sync/internal/adapter/handler"
	"github.com/turtlefinance/meeting-sync/internal/infrastructure/external/fireflies"
	"github.com/turtlefinance/meeting-sync/internal/infrastructure/external/gsheets"
	"github.com/turtlefinance/meeting-sync/internal/infrastructure/external/notiondb"
	"github.com/turtlefinance/meeting-sync/internal/infrastructure/external/vertex"
	"github.com/turtlefinance/meeting-sync/internal/usecase/pipeline"
	"github.com/turtlefinance/meeting-sync/internal/usecase/summarize"
	syncengine "github.com/turtlefinance/meeting-sync/internal/usecase/sync"
	"github.com/turtlefinance/meeting-sync/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	ctx := context.Background()

	// Transcription provider
	log.Println("🎙️  Initializing Fireflies client...")
	firefliesClient := fireflies.NewClient(&cfg.Fireflies)

	// Generative model
	log.Println("🤖 Initializing Vertex AI client...")
	vertexClient, err := vertex.NewClient(ctx, &cfg.Vertex)
	if err != nil {
		log.Fatalf("Failed to initialize Vertex AI client: %v", err)
	}
	summarizer := summarize.NewService(vertexClient, logger)

	// Spreadsheet destination
	log.Println("📊 Initializing Sheets client...")
	sheetsClient, err := gsheets.NewClient(ctx, cfg.Sheets.SpreadsheetID, cfg.Sheets.CredentialsJSON)
	if err != nil {
		log.Fatalf("Failed to initialize Sheets client: %v", err)
	}

	// Record-store destination
	log.Println("📓 Initializing Notion client...")
	notionClient := notiondb.NewClient(cfg.Notion.APIKey)

	// Sync engine fanning out to all destinations
	log.Println("🔁 Initializing sync engine...")
	engine := syncengine.NewEngine(logger, cfg.Sync.CallDelay,
		syncengine.NewMeetingSheet(sheetsClient, cfg.Sheets.MeetingSheet),
		syncengine.NewTaskSheet(sheetsClient, cfg.Sheets.TaskSheet),
		syncengine.NewNotionMeetings(notionClient, cfg.Notion.MeetingDatabaseID),
		syncengine.NewNotionTasks(notionClient, cfg.Notion.TaskDatabaseID),
	)

	// Pipeline service
	log.Println("⚙️  Initializing pipeline service...")
	pipelineService := pipeline.NewService(
		firefliesClient,
		summarizer,
		engine,
		cfg.Fireflies.WebhookSecret,
		cfg.Sync.CallDelay,
		logger,
	)

	// Handlers
	log.Println("🪝 Initializing webhook handler...")
	webhookHandler := handler.NewFirefliesWebhook(pipelineService, logger)

	clientFilter := syncengine.NewClientFilter(sheetsClient, cfg.Sheets.MeetingSheet, cfg.Sheets.FilterSheet, logger)
	adminHandler := handler.NewAdmin(notionClient, clientFilter, cfg.Notion.ParentPageID, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, webhookHandler, adminHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
