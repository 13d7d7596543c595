package dto

import (
	"time"

	"github.com/samber/lo"

	"github.com/seodap/teacher-api/internal/analytics"
)

// SubmissionQuery carries the snapshot filters shared by every teacher
// endpoint. Dates are YYYY-MM-DD in the configured display zone; Student
// matches as a substring, Model as a case-insensitive substring.
type SubmissionQuery struct {
	StartDate    string `validate:"omitempty,datetime=2006-01-02"`
	EndDate      string `validate:"omitempty,datetime=2006-01-02"`
	Student      string
	Model        string
	WithFeedback bool
}

// DashboardRequest selects the records aggregated into the dashboard.
type DashboardRequest struct {
	SubmissionQuery
}

// OverviewResponse serializes the dashboard headline numbers.
type OverviewResponse struct {
	Submissions  int        `json:"submissions"`
	Students     int        `json:"students"`
	CorrectTotal int        `json:"correct_total"`
	LatestAt     *time.Time `json:"latest_at"`
}

// QuestionStatResponse serializes a question's outcome counts and rates.
type QuestionStatResponse struct {
	Question      int     `json:"question"`
	Correct       int     `json:"correct"`
	Incorrect     int     `json:"incorrect"`
	Indeterminate int     `json:"indeterminate"`
	CorrectRate   float64 `json:"correct_rate"`
	IncorrectRate float64 `json:"incorrect_rate"`
}

// StudentSummaryResponse serializes one row of the latest-submission ranking.
type StudentSummaryResponse struct {
	StudentID    string `json:"student_id"`
	CorrectCount int    `json:"correct_count"`
}

// DashboardResponse bundles every dashboard panel into one payload.
type DashboardResponse struct {
	Overview      OverviewResponse         `json:"overview"`
	QuestionStats []QuestionStatResponse   `json:"question_stats"`
	Students      []StudentSummaryResponse `json:"students"`
	GeneratedAt   time.Time                `json:"generated_at"`
	CacheHit      bool                     `json:"cache_hit"`
}

// NewOverviewResponse converts the analytics overview, rendering the latest
// submission time in the display zone.
func NewOverviewResponse(overview analytics.Overview, zone *time.Location) OverviewResponse {
	response := OverviewResponse{
		Submissions:  overview.Submissions,
		Students:     overview.Students,
		CorrectTotal: overview.CorrectTotal,
	}
	if overview.LatestAt != nil {
		latest := overview.LatestAt.In(displayZone(zone))
		response.LatestAt = &latest
	}
	return response
}

// NewQuestionStatResponses converts per-question statistics for the wire.
func NewQuestionStatResponses(stats []analytics.QuestionStat) []QuestionStatResponse {
	return lo.Map(stats, func(stat analytics.QuestionStat, _ int) QuestionStatResponse {
		return QuestionStatResponse{
			Question:      stat.Question,
			Correct:       stat.Correct,
			Incorrect:     stat.Incorrect,
			Indeterminate: stat.Indeterminate,
			CorrectRate:   stat.CorrectRate,
			IncorrectRate: stat.IncorrectRate,
		}
	})
}

// NewStudentSummaryResponses converts the student ranking for the wire.
func NewStudentSummaryResponses(summaries []analytics.StudentSummary) []StudentSummaryResponse {
	return lo.Map(summaries, func(summary analytics.StudentSummary, _ int) StudentSummaryResponse {
		return StudentSummaryResponse{
			StudentID:    summary.StudentID,
			CorrectCount: summary.CorrectCount,
		}
	})
}

func displayZone(zone *time.Location) *time.Location {
	if zone == nil {
		return time.UTC
	}
	return zone
}
