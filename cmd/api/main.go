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
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"talentsift/resume-screener/internal/config"
	"talentsift/resume-screener/internal/handlers"
	"talentsift/resume-screener/internal/logger"
	"talentsift/resume-screener/internal/models"
	"talentsift/resume-screener/internal/services"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Server.Env != "development", cfg.Server.Env == "development")
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Core services
	taxonomy := services.NewTaxonomyService(
		cfg.Taxonomy.TaxonomyPath,
		cfg.Taxonomy.SynonymsPath,
		logger.Named(zlog, "taxonomy"),
	)
	vectorizer := services.NewHashingVectorizer()
	matcher := services.NewMatcherService(taxonomy, logger.Named(zlog, "matcher"))
	explainer := services.NewExplainerService(taxonomy)

	pdfParser := services.NewPDFParserService(services.ExtractionLimits{
		MaxFileSizeBytes: cfg.Storage.MaxFileSize,
		MaxPages:         cfg.Limits.MaxResumePages,
		MaxTextChars:     cfg.Limits.MaxExtractedChars,
	})
	extractor := services.NewSkillExtractorService(
		taxonomy,
		cfg.Limits.MinSkillConfidence,
		cfg.Limits.MinTextLength,
		logger.Named(zlog, "extractor"),
	)

	screening := services.NewScreeningService(
		pdfParser,
		vectorizer,
		extractor,
		matcher,
		explainer,
		models.ScoreWeights{
			SkillMatch:         cfg.Matching.SkillMatchWeight,
			SemanticSimilarity: cfg.Matching.SemanticSimilarityWeight,
		},
		logger.Named(zlog, "screening"),
	)
	comparison := services.NewComparisonService(screening, logger.Named(zlog, "comparison"))
	batch := services.NewBatchService(
		screening,
		cfg.Matching.MaxResumesPerBatch,
		cfg.Matching.MaxBatchSizeBytes,
		logger.Named(zlog, "batch"),
	)
	improvement := services.NewImprovementService()
	learning := services.NewLearningService(
		taxonomy,
		cfg.Taxonomy.ResourcesPath,
		logger.Named(zlog, "learning"),
	)

	storageService := services.NewStorageService(cfg.Storage.UploadPath, cfg.Storage.MaxFileSize)
	if err := storageService.EnsureUploadDir(); err != nil {
		zlog.Fatal("failed to create upload directory", zap.Error(err))
	}

	// Handlers
	healthHandler := handlers.NewHealthHandler(taxonomy, vectorizer)
	matchHandler := handlers.NewMatchHandler(vectorizer, matcher, explainer)
	screenHandler := handlers.NewScreenHandler(screening, pdfParser, storageService)
	compareHandler := handlers.NewCompareHandler(screening, comparison, storageService, cfg.Matching.MaxJobsPerComparison)
	batchHandler := handlers.NewBatchHandler(batch, storageService)
	skillsHandler := handlers.NewSkillsHandler(extractor)
	improveHandler := handlers.NewImproveHandler(screening, improvement, storageService)
	learningHandler := handlers.NewLearningHandler(learning)

	app := fiber.New(fiber.Config{
		AppName:      "Resume Screener API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Matching.MaxBatchSizeBytes),
		ErrorHandler: customErrorHandler,
	})

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

	api := app.Group("/api/v1")

	api.Get("/health", healthHandler.HandleHealth)
	api.Post("/screen", screenHandler.HandleScreen)
	api.Post("/extract", screenHandler.HandleExtract)
	api.Post("/match", matchHandler.HandleMatch)
	api.Post("/compare", compareHandler.HandleCompare)
	api.Post("/batch", batchHandler.HandleBatch)
	api.Post("/skills", skillsHandler.HandleExtractSkills)
	api.Post("/improve", improveHandler.HandleImprove)
	api.Post("/learning-path", learningHandler.HandleLearningPath)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Screener API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET  /api/v1/health",
				"POST /api/v1/screen",
				"POST /api/v1/extract",
				"POST /api/v1/match",
				"POST /api/v1/compare",
				"POST /api/v1/batch",
				"POST /api/v1/skills",
				"POST /api/v1/improve",
				"POST /api/v1/learning-path",
			},
		})
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			zlog.Error("server forced to shutdown", zap.Error(err))
		}
	}()

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
