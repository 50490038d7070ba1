package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"autoapply/autoapply-uae/internal/config"
	"autoapply/autoapply-uae/internal/handlers"
	"autoapply/autoapply-uae/internal/logger"
	"autoapply/autoapply-uae/internal/repositories"
	"autoapply/autoapply-uae/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.Server.Env != "development", cfg.Server.Env == "development")
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()
	zlog.Info("config loaded")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}

	// Initialize repositories
	appRepo := repositories.NewApplicationRepository(db)

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		zlog.Fatal("failed to create upload directory", zap.Error(err))
	}

	pdfParser := services.NewPDFParserService()
	extractor := services.NewExtractorService(services.DefaultVocabulary())
	composer := services.NewComposerService()
	searchService := services.NewJSearchClient(
		cfg.JSearch.APIKey,
		cfg.JSearch.BaseURL,
		cfg.JSearch.Country,
		zlog,
	)

	// Optional Gemini personalization; the dispatcher falls back to the
	// static email template without it.
	var intro services.IntroGenerator
	if cfg.Gemini.APIKey != "" {
		intro, err = services.NewGeminiIntroGenerator(context.Background(), cfg.Gemini.APIKey)
		if err != nil {
			zlog.Warn("gemini unavailable, using static email template", zap.Error(err))
			intro = nil
		}
	}

	// Email dispatch is unavailable without Resend credentials; the apply
	// endpoint reports this per request.
	var dispatcher services.DispatcherService
	if cfg.Resend.APIKey != "" {
		mailer := services.NewResendMailer(cfg.Resend.APIKey)
		dispatcher = services.NewDispatcherService(composer, mailer, intro, cfg.Resend.From, zlog)
	} else {
		zlog.Warn("RESEND_API_KEY not set, apply endpoint disabled")
	}
	zlog.Info("services initialized")

	// Initialize handlers
	parseHandler := handlers.NewParseCVHandler(
		pdfParser,
		extractor,
		storageService,
		cfg.Storage.MaxFileSize,
		zlog,
	)
	jobsHandler := handlers.NewJobsHandler(searchService, zlog)
	applyHandler := handlers.NewApplyHandler(dispatcher, appRepo, zlog)
	historyHandler := handlers.NewHistoryHandler(appRepo)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AutoApply UAE API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/parse-cv", parseHandler.HandleParseCV)
	api.Get("/jobs", jobsHandler.HandleSearchJobs)
	api.Post("/apply", applyHandler.HandleApply)
	api.Get("/applications", historyHandler.HandleListApplications)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AutoApply UAE API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/parse-cv",
				"GET /api/v1/jobs",
				"POST /api/v1/apply",
				"GET /api/v1/applications",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			zlog.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
