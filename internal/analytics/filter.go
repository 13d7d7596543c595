package analytics

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/seodap/teacher-api/internal/models"
)

// Filter narrows a submission snapshot before aggregation. Zero-value fields
// match everything; set fields conjoin.
type Filter struct {
	From         *time.Time
	To           *time.Time
	StudentID    string
	Model        string
	WithFeedback bool
}

// Matches reports whether a record passes every set predicate. The time
// range is half-open: From inclusive, To exclusive. StudentID matches as a
// substring, Model as a case-insensitive substring; a record without a model
// never matches a model query. Matches is total and never fails.
func (f Filter) Matches(record models.StudentSubmission) bool {
	if f.From != nil && record.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && !record.CreatedAt.Before(*f.To) {
		return false
	}
	if f.StudentID != "" && !strings.Contains(record.StudentID, f.StudentID) {
		return false
	}
	if f.Model != "" {
		if record.Model == nil {
			return false
		}
		if !strings.Contains(strings.ToLower(*record.Model), strings.ToLower(f.Model)) {
			return false
		}
	}
	if f.WithFeedback && !record.HasFeedback() {
		return false
	}
	return true
}

// ApplyFilter returns the records matching f, preserving input order.
func ApplyFilter(records []models.StudentSubmission, f Filter) []models.StudentSubmission {
	return lo.Filter(records, func(record models.StudentSubmission, _ int) bool {
		return f.Matches(record)
	})
}
