package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/seodap/teacher-api/internal/config"
	"github.com/seodap/teacher-api/internal/utils"
)

// HealthResponse is the payload returned by the health endpoint. DisplayZone
// tells clients which timezone dashboard dates resolve in.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	Environment string    `json:"environment"`
	DisplayZone string    `json:"display_zone"`
}

// HealthCheck returns a handler that reports application health information.
func HealthCheck(cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := HealthResponse{
			Status:      "ok",
			Timestamp:   time.Now().UTC(),
			Service:     cfg.AppName,
			Environment: cfg.AppEnv,
			DisplayZone: cfg.DisplayZone.String(),
		}

		return utils.SendSuccess(c, "service healthy", payload)
	}
}
