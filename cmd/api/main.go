package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"skilledwork/jobboard-api/internal/config"
	"skilledwork/jobboard-api/internal/handlers"
	"skilledwork/jobboard-api/internal/repositories"
	"skilledwork/jobboard-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	taskRepo := repositories.NewTaskRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	extractor := services.NewTextExtractor()
	log.Println("✅ Services initialized successfully")

	// Initialize the embedding provider. Scoring degrades to a zero match
	// score without it, so a missing key is not fatal.
	var embedder services.Embedder
	if cfg.Gemini.APIKey != "" {
		embedder, err = services.NewGeminiEmbedder(
			cfg.Gemini.APIKey,
			cfg.Gemini.EmbedModel,
			cfg.Gemini.EmbedTimeout,
		)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini embedder: %v", err)
		}
		log.Println("✅ Gemini embedder initialized successfully")
	} else {
		log.Println("⚠️  GEMINI_API_KEY not set, job match scoring disabled")
	}

	scorer := services.NewScorer(embedder)

	applicationService := services.NewApplicationService(
		appRepo,
		jobRepo,
		userRepo,
		extractor,
		scorer,
	)
	log.Println("✅ Application service initialized")

	// Initialize handlers
	jobHandler := handlers.NewJobHandler(jobRepo)
	applicationHandler := handlers.NewApplicationHandler(
		applicationService,
		storageService,
		cfg.Storage.MaxFileSize,
		cfg.Scoring.RejectUnsupportedResume,
	)
	taskHandler := handlers.NewTaskHandler(
		taskRepo,
		storageService,
		cfg.Storage.MaxFileSize,
	)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Skilledwork Jobboard API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-User-ID",
	}))

	// Uploaded resumes and gallery images
	app.Static("/uploads", cfg.Storage.UploadPath)

	// Routes
	api := app.Group("/api")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	jobs := api.Group("/jobs")
	jobs.Post("/", jobHandler.HandleCreate)
	jobs.Get("/", jobHandler.HandleGetAll)
	jobs.Get("/recommended", jobHandler.HandleGetRecommended)
	jobs.Get("/mine", jobHandler.HandleGetMine)
	jobs.Post("/apply", applicationHandler.HandleApply)
	jobs.Get("/my-applications", applicationHandler.HandleGetMine)
	jobs.Put("/applications/:id/status", applicationHandler.HandleUpdateStatus)
	jobs.Get("/:jobId/applications", applicationHandler.HandleGetByJob)
	jobs.Get("/:id", jobHandler.HandleGetByID)
	jobs.Put("/:id", jobHandler.HandleUpdate)
	jobs.Delete("/:id", jobHandler.HandleDelete)

	tasks := api.Group("/tasks")
	tasks.Post("/", taskHandler.HandleCreate)
	tasks.Get("/", taskHandler.HandleGetAll)
	tasks.Get("/mine", taskHandler.HandleGetMine)
	tasks.Get("/:id", taskHandler.HandleGetByID)
	tasks.Put("/:id", taskHandler.HandleUpdate)
	tasks.Delete("/:id", taskHandler.HandleDelete)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Skilledwork Jobboard API",
			"version": "1.0.0",
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
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
