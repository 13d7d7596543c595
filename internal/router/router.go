package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/seodap/teacher-api/internal/config"
	"github.com/seodap/teacher-api/internal/handler"
	"github.com/seodap/teacher-api/internal/middleware"
	"github.com/seodap/teacher-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	DashboardHandler  *handler.DashboardHandler
	SubmissionHandler *handler.SubmissionHandler
	ExportHandler     *handler.ExportHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	// Common v1 group for health & headers
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	app.Get("/metrics", observability.MetricsHandler())

	// Every teacher endpoint sits behind the shared access key. The limiter
	// runs first so key guessing is throttled too.
	teacher := api.Group("/teacher",
		middleware.RateLimit("teacher", 60, time.Minute),
		middleware.TeacherGate(cfg.TeacherAccessKey),
	)

	if deps.DashboardHandler != nil {
		deps.DashboardHandler.Register(teacher)
	}
	if deps.SubmissionHandler != nil {
		deps.SubmissionHandler.Register(teacher)
	}
	if deps.ExportHandler != nil {
		deps.ExportHandler.Register(teacher)
	}
}
