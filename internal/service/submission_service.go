package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/seodap/teacher-api/internal/analytics"
	"github.com/seodap/teacher-api/internal/dto"
	"github.com/seodap/teacher-api/internal/models"
)

// ErrStudentNotFound indicates the requested student has no submissions in
// the current snapshot window.
var ErrStudentNotFound = errors.New("student not found")

// SubmissionService serves the submissions table and the per-student
// drill-down.
type SubmissionService interface {
	List(ctx context.Context, req dto.SubmissionListRequest) (dto.SubmissionListResponse, error)
	StudentDetail(ctx context.Context, studentID string, req dto.StudentDetailRequest) (dto.StudentDetailResponse, error)
}

type submissionService struct {
	feed      SubmissionFeed
	validator *validator.Validate
	zone      *time.Location
	logger    zerolog.Logger
}

// NewSubmissionService constructs a SubmissionService instance.
func NewSubmissionService(feed SubmissionFeed, validate *validator.Validate, zone *time.Location, logger zerolog.Logger) SubmissionService {
	if zone == nil {
		zone = time.UTC
	}
	return &submissionService{
		feed:      feed,
		validator: validate,
		zone:      zone,
		logger:    logger.With().Str("component", "submission_service").Logger(),
	}
}

func (s *submissionService) List(ctx context.Context, req dto.SubmissionListRequest) (dto.SubmissionListResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.SubmissionListResponse{}, err
	}

	filter, err := resolveFilter(req.SubmissionQuery, s.zone)
	if err != nil {
		return dto.SubmissionListResponse{}, err
	}

	records, _, err := s.feed.Snapshot(ctx)
	if err != nil {
		return dto.SubmissionListResponse{}, err
	}

	// The snapshot arrives newest first, so filtering preserves the table
	// order the dashboard shows.
	filtered := analytics.ApplyFilter(records, filter)

	page := maxInt(req.Page, 1)
	pageSize := clampPageSize(req.PageSize)
	pageRecords := paginate(filtered, page, pageSize)

	opts := dto.SubmissionRowOptions{
		IncludeAnswers:    req.IncludeAnswers,
		IncludeGuidelines: req.IncludeGuidelines,
		Zone:              s.zone,
	}

	pagination := dto.PaginationMeta{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: int64(len(filtered)),
		TotalPages: int(math.Ceil(float64(len(filtered)) / float64(pageSize))),
	}

	return dto.SubmissionListResponse{
		Items:      dto.NewSubmissionRowResponses(pageRecords, opts),
		Pagination: pagination,
	}, nil
}

func (s *submissionService) StudentDetail(ctx context.Context, studentID string, req dto.StudentDetailRequest) (dto.StudentDetailResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.StudentDetailResponse{}, err
	}

	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return dto.StudentDetailResponse{}, ErrStudentNotFound
	}

	// The drill-down targets one exact student; the substring filter from
	// the shared query does not apply here.
	query := req.SubmissionQuery
	query.Student = ""

	filter, err := resolveFilter(query, s.zone)
	if err != nil {
		return dto.StudentDetailResponse{}, err
	}

	records, _, err := s.feed.Snapshot(ctx)
	if err != nil {
		return dto.StudentDetailResponse{}, err
	}

	matched := make([]models.StudentSubmission, 0)
	for _, record := range analytics.ApplyFilter(records, filter) {
		if record.StudentID == studentID {
			matched = append(matched, record)
		}
	}
	if len(matched) == 0 {
		return dto.StudentDetailResponse{}, ErrStudentNotFound
	}

	opts := dto.SubmissionRowOptions{
		IncludeAnswers:    true,
		IncludeGuidelines: true,
		Zone:              s.zone,
	}

	return dto.StudentDetailResponse{
		StudentID:   studentID,
		Submissions: dto.NewSubmissionRowResponses(matched, opts),
	}, nil
}

func paginate(records []models.StudentSubmission, page, pageSize int) []models.StudentSubmission {
	start := (page - 1) * pageSize
	if start >= len(records) {
		return []models.StudentSubmission{}
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}
