package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/seodap/teacher-api/internal/dto"
	"github.com/seodap/teacher-api/internal/service"
	"github.com/seodap/teacher-api/internal/utils"
)

// ExportHandler streams the filtered submissions table as a CSV download.
type ExportHandler struct {
	service service.ExportService
	logger  zerolog.Logger
}

// NewExportHandler constructs the handler.
func NewExportHandler(service service.ExportService, logger zerolog.Logger) *ExportHandler {
	return &ExportHandler{
		service: service,
		logger:  logger.With().Str("component", "export_handler").Logger(),
	}
}

// Register attaches the export route to the router group.
func (h *ExportHandler) Register(router fiber.Router) {
	router.Get("/export", h.export)
}

func (h *ExportHandler) export(c *fiber.Ctx) error {
	req := dto.ExportRequest{
		SubmissionQuery:   submissionQueryFromRequest(c),
		IncludeAnswers:    c.QueryBool("include_answers"),
		IncludeGuidelines: c.QueryBool("include_guidelines"),
	}

	result, err := h.service.ExportCSV(c.Context(), req)
	if err != nil {
		switch {
		case isValidationError(err), errors.Is(err, service.ErrInvalidDateRange):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to export submissions")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to export submissions")
		}
	}

	c.Attachment(result.Filename)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(result.Content)
}
