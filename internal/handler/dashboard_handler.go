package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/seodap/teacher-api/internal/dto"
	"github.com/seodap/teacher-api/internal/service"
	"github.com/seodap/teacher-api/internal/utils"
)

// DashboardHandler exposes the aggregated teacher dashboard.
type DashboardHandler struct {
	service service.DashboardService
	logger  zerolog.Logger
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service service.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With().Str("component", "dashboard_handler").Logger(),
	}
}

// Register attaches dashboard routes to the router group.
func (h *DashboardHandler) Register(router fiber.Router) {
	router.Get("/dashboard", h.dashboard)
	router.Post("/dashboard/refresh", h.refresh)
}

func (h *DashboardHandler) dashboard(c *fiber.Ctx) error {
	req := dto.DashboardRequest{SubmissionQuery: submissionQueryFromRequest(c)}

	response, err := h.service.GetDashboard(c.Context(), req)
	if err != nil {
		switch {
		case isValidationError(err), errors.Is(err, service.ErrInvalidDateRange):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to build dashboard")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to build dashboard")
		}
	}

	return utils.SendSuccess(c, "dashboard retrieved", response)
}

func (h *DashboardHandler) refresh(c *fiber.Ctx) error {
	if err := h.service.Refresh(c.Context()); err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to refresh snapshot")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to refresh snapshot")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusAccepted, "snapshot refresh queued", nil)
}
