package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/seodap/teacher-api/internal/analytics"
	"github.com/seodap/teacher-api/internal/dto"
	"github.com/seodap/teacher-api/internal/models"
)

// utf8BOM prefixes exports so spreadsheet apps detect the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

const exportTimeLayout = "2006-01-02 15:04"

// ExportService renders the filtered submissions table as a CSV download.
type ExportService interface {
	ExportCSV(ctx context.Context, req dto.ExportRequest) (dto.ExportResult, error)
}

type exportService struct {
	feed      SubmissionFeed
	validator *validator.Validate
	zone      *time.Location
	logger    zerolog.Logger
}

// NewExportService constructs the export service.
func NewExportService(feed SubmissionFeed, validate *validator.Validate, zone *time.Location, logger zerolog.Logger) ExportService {
	if zone == nil {
		zone = time.UTC
	}
	return &exportService{
		feed:      feed,
		validator: validate,
		zone:      zone,
		logger:    logger.With().Str("component", "export_service").Logger(),
	}
}

func (s *exportService) ExportCSV(ctx context.Context, req dto.ExportRequest) (dto.ExportResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.ExportResult{}, err
	}

	filter, err := resolveFilter(req.SubmissionQuery, s.zone)
	if err != nil {
		return dto.ExportResult{}, err
	}

	records, _, err := s.feed.Snapshot(ctx)
	if err != nil {
		return dto.ExportResult{}, err
	}

	filtered := analytics.ApplyFilter(records, filter)

	var buf bytes.Buffer
	buf.Write(utf8BOM)

	writer := csv.NewWriter(&buf)
	if err := writer.Write(s.header(req)); err != nil {
		return dto.ExportResult{}, fmt.Errorf("write csv header: %w", err)
	}
	for _, record := range filtered {
		if err := writer.Write(s.row(record, req)); err != nil {
			return dto.ExportResult{}, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return dto.ExportResult{}, fmt.Errorf("flush csv: %w", err)
	}

	s.logger.Info().Int("rows", len(filtered)).Msg("submission export rendered")

	return dto.ExportResult{
		Filename: exportFilename(req.SubmissionQuery),
		Content:  buf.Bytes(),
	}, nil
}

func (s *exportService) header(req dto.ExportRequest) []string {
	header := []string{"submitted_at", "student_id", "model", "feedback_1", "feedback_2", "feedback_3"}
	if req.IncludeAnswers {
		header = append(header, "answer_1", "answer_2", "answer_3")
	}
	if req.IncludeGuidelines {
		header = append(header, "guideline_1", "guideline_2", "guideline_3")
	}
	return header
}

func (s *exportService) row(record models.StudentSubmission, req dto.ExportRequest) []string {
	row := []string{
		record.CreatedAt.In(s.zone).Format(exportTimeLayout),
		record.StudentID,
		stringValue(record.Model),
	}
	for _, q := range models.QuestionIndices() {
		row = append(row, stringValue(record.Feedback(q)))
	}
	if req.IncludeAnswers {
		for _, q := range models.QuestionIndices() {
			row = append(row, stringValue(record.Answer(q)))
		}
	}
	if req.IncludeGuidelines {
		for _, q := range models.QuestionIndices() {
			row = append(row, stringValue(record.Guideline(q)))
		}
	}
	return row
}

func exportFilename(query dto.SubmissionQuery) string {
	start := strings.TrimSpace(query.StartDate)
	end := strings.TrimSpace(query.EndDate)
	if start == "" && end == "" {
		return "submissions_all.csv"
	}
	if start == "" {
		start = "all"
	}
	if end == "" {
		end = "all"
	}
	return fmt.Sprintf("submissions_%s_%s.csv", start, end)
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
