package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/seodap/teacher-api/internal/config"
	"github.com/seodap/teacher-api/internal/database"
	"github.com/seodap/teacher-api/internal/handler"
	"github.com/seodap/teacher-api/internal/middleware"
	"github.com/seodap/teacher-api/internal/repository"
	"github.com/seodap/teacher-api/internal/router"
	"github.com/seodap/teacher-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// The student_submissions table is owned by the student-facing app, so
	// there is no migration step here.

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, snapshot caching disabled")
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	submissionRepo := repository.NewSubmissionRepository(db)
	feed := service.NewSubmissionFeed(submissionRepo, redisClient, cfg.SnapshotTTL, cfg.FetchLimit, logger)

	dashboardService := service.NewDashboardService(feed, validate, cfg.DisplayZone, logger)
	submissionService := service.NewSubmissionService(feed, validate, cfg.DisplayZone, logger)
	exportService := service.NewExportService(feed, validate, cfg.DisplayZone, logger)

	dashboardHandler := handler.NewDashboardHandler(dashboardService, logger)
	submissionHandler := handler.NewSubmissionHandler(submissionService, logger)
	exportHandler := handler.NewExportHandler(exportService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		DashboardHandler:  dashboardHandler,
		SubmissionHandler: submissionHandler,
		ExportHandler:     exportHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
