package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/seodap/teacher-api/internal/dto"
	"github.com/seodap/teacher-api/internal/middleware"
)

func parseQueryInt(c *fiber.Ctx, key string) (int, error) {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}

// submissionQueryFromRequest collects the snapshot filters shared by every
// teacher endpoint.
func submissionQueryFromRequest(c *fiber.Ctx) dto.SubmissionQuery {
	return dto.SubmissionQuery{
		StartDate:    strings.TrimSpace(c.Query("start_date")),
		EndDate:      strings.TrimSpace(c.Query("end_date")),
		Student:      c.Query("student"),
		Model:        c.Query("model"),
		WithFeedback: c.QueryBool("with_feedback"),
	}
}

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}
