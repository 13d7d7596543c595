package dto

import (
	"time"

	"github.com/samber/lo"

	"github.com/seodap/teacher-api/internal/analytics"
	"github.com/seodap/teacher-api/internal/models"
)

// PaginationMeta captures pagination metadata for list responses.
type PaginationMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// SubmissionListRequest describes the submissions table query: the shared
// filters plus column toggles and pagination.
type SubmissionListRequest struct {
	SubmissionQuery
	IncludeAnswers    bool
	IncludeGuidelines bool
	Page              int
	PageSize          int
}

// StudentDetailRequest narrows the drill-down for a single student.
type StudentDetailRequest struct {
	SubmissionQuery
}

// ExportRequest describes the CSV download: the shared filters plus column
// toggles.
type ExportRequest struct {
	SubmissionQuery
	IncludeAnswers    bool
	IncludeGuidelines bool
}

// QuestionReviewResponse is one question's graded content within a
// submission. Answer and guideline only appear when the caller asked for
// those columns.
type QuestionReviewResponse struct {
	Question  int     `json:"question"`
	Outcome   string  `json:"outcome"`
	Feedback  *string `json:"feedback"`
	Answer    *string `json:"answer,omitempty"`
	Guideline *string `json:"guideline,omitempty"`
}

// SubmissionRowResponse is one row of the submissions table.
type SubmissionRowResponse struct {
	ID           uint                     `json:"id"`
	StudentID    string                   `json:"student_id"`
	Model        *string                  `json:"model"`
	SubmittedAt  time.Time                `json:"submitted_at"`
	CorrectCount int                      `json:"correct_count"`
	Questions    []QuestionReviewResponse `json:"questions"`
}

// SubmissionListResponse wraps the paginated submissions table.
type SubmissionListResponse struct {
	Items      []SubmissionRowResponse `json:"items"`
	Pagination PaginationMeta          `json:"pagination"`
}

// StudentDetailResponse carries one student's filtered submissions, newest
// first, with full review content for each question.
type StudentDetailResponse struct {
	StudentID   string                  `json:"student_id"`
	Submissions []SubmissionRowResponse `json:"submissions"`
}

// ExportResult is a rendered CSV document ready for download.
type ExportResult struct {
	Filename string
	Content  []byte
}

// SubmissionRowOptions controls which optional columns a row carries and the
// zone timestamps render in.
type SubmissionRowOptions struct {
	IncludeAnswers    bool
	IncludeGuidelines bool
	Zone              *time.Location
}

// NewSubmissionRowResponse converts one submission row for the wire.
func NewSubmissionRowResponse(record models.StudentSubmission, opts SubmissionRowOptions) SubmissionRowResponse {
	indices := models.QuestionIndices()
	questions := make([]QuestionReviewResponse, 0, len(indices))
	for _, q := range indices {
		review := QuestionReviewResponse{
			Question: q,
			Outcome:  analytics.Classify(record.Feedback(q)).String(),
			Feedback: record.Feedback(q),
		}
		if opts.IncludeAnswers {
			review.Answer = record.Answer(q)
		}
		if opts.IncludeGuidelines {
			review.Guideline = record.Guideline(q)
		}
		questions = append(questions, review)
	}

	return SubmissionRowResponse{
		ID:           record.ID,
		StudentID:    record.StudentID,
		Model:        record.Model,
		SubmittedAt:  record.CreatedAt.In(displayZone(opts.Zone)),
		CorrectCount: analytics.CorrectCount(record),
		Questions:    questions,
	}
}

// NewSubmissionRowResponses converts submission rows for the wire.
func NewSubmissionRowResponses(records []models.StudentSubmission, opts SubmissionRowOptions) []SubmissionRowResponse {
	return lo.Map(records, func(record models.StudentSubmission, _ int) SubmissionRowResponse {
		return NewSubmissionRowResponse(record, opts)
	})
}
