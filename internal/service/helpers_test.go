package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/seodap/teacher-api/internal/models"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func strPtr(v string) *string {
	return &v
}

// submissionAt builds a snapshot row with feedback columns filled in order.
func submissionAt(id uint, studentID string, createdAt time.Time, feedbacks ...*string) models.StudentSubmission {
	record := models.StudentSubmission{ID: id, StudentID: studentID, CreatedAt: createdAt}
	if len(feedbacks) > 0 {
		record.Feedback1 = feedbacks[0]
	}
	if len(feedbacks) > 1 {
		record.Feedback2 = feedbacks[1]
	}
	if len(feedbacks) > 2 {
		record.Feedback3 = feedbacks[2]
	}
	return record
}

// stubFeed serves a fixed snapshot without touching the database or cache.
type stubFeed struct {
	records     []models.StudentSubmission
	hit         bool
	err         error
	invalidated int
}

func (f *stubFeed) Snapshot(_ context.Context) ([]models.StudentSubmission, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	return f.records, f.hit, nil
}

func (f *stubFeed) Invalidate(_ context.Context) error {
	f.invalidated++
	return nil
}
