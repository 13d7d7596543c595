package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/seodap/teacher-api/internal/dto"
	"github.com/seodap/teacher-api/internal/service"
	"github.com/seodap/teacher-api/internal/utils"
)

// SubmissionHandler serves the submissions table and the per-student
// drill-down.
type SubmissionHandler struct {
	service service.SubmissionService
	logger  zerolog.Logger
}

// NewSubmissionHandler constructs the handler.
func NewSubmissionHandler(service service.SubmissionService, logger zerolog.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		service: service,
		logger:  logger.With().Str("component", "submission_handler").Logger(),
	}
}

// Register attaches submission routes to the router group.
func (h *SubmissionHandler) Register(router fiber.Router) {
	router.Get("/submissions", h.list)
	router.Get("/students/:studentID", h.studentDetail)
}

func (h *SubmissionHandler) list(c *fiber.Ctx) error {
	page, err := parseQueryInt(c, "page")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid page")
	}

	pageSize, err := parseQueryInt(c, "page_size")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid page size")
	}

	req := dto.SubmissionListRequest{
		SubmissionQuery:   submissionQueryFromRequest(c),
		IncludeAnswers:    c.QueryBool("include_answers"),
		IncludeGuidelines: c.QueryBool("include_guidelines"),
		Page:              page,
		PageSize:          pageSize,
	}

	response, err := h.service.List(c.Context(), req)
	if err != nil {
		switch {
		case isValidationError(err), errors.Is(err, service.ErrInvalidDateRange):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to list submissions")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to list submissions")
		}
	}

	return utils.SendSuccess(c, "submissions retrieved", response)
}

func (h *SubmissionHandler) studentDetail(c *fiber.Ctx) error {
	studentID := strings.TrimSpace(c.Params("studentID"))

	req := dto.StudentDetailRequest{SubmissionQuery: submissionQueryFromRequest(c)}

	response, err := h.service.StudentDetail(c.Context(), studentID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "student not found")
		case isValidationError(err), errors.Is(err, service.ErrInvalidDateRange):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to fetch student submissions")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch student submissions")
		}
	}

	return utils.SendSuccess(c, "student submissions retrieved", response)
}
