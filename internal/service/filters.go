package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/seodap/teacher-api/internal/analytics"
	"github.com/seodap/teacher-api/internal/dto"
)

// ErrInvalidDateRange indicates a date filter that could not be parsed.
var ErrInvalidDateRange = errors.New("invalid date range")

const dateLayout = "2006-01-02"

// resolveFilter turns validated query values into snapshot predicates. Date
// bounds resolve in the display zone: From is midnight of the start date and
// To is midnight after the end date, which keeps the end date inclusive.
func resolveFilter(query dto.SubmissionQuery, zone *time.Location) (analytics.Filter, error) {
	if zone == nil {
		zone = time.UTC
	}

	filter := analytics.Filter{
		StudentID:    strings.TrimSpace(query.Student),
		Model:        strings.TrimSpace(query.Model),
		WithFeedback: query.WithFeedback,
	}

	if trimmed := strings.TrimSpace(query.StartDate); trimmed != "" {
		day, err := time.ParseInLocation(dateLayout, trimmed, zone)
		if err != nil {
			return analytics.Filter{}, fmt.Errorf("%w: start_date %q", ErrInvalidDateRange, trimmed)
		}
		filter.From = &day
	}

	if trimmed := strings.TrimSpace(query.EndDate); trimmed != "" {
		day, err := time.ParseInLocation(dateLayout, trimmed, zone)
		if err != nil {
			return analytics.Filter{}, fmt.Errorf("%w: end_date %q", ErrInvalidDateRange, trimmed)
		}
		end := day.AddDate(0, 0, 1)
		filter.To = &end
	}

	return filter, nil
}

func clampPageSize(size int) int {
	if size <= 0 {
		return 20
	}
	if size > 100 {
		return 100
	}
	return size
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
