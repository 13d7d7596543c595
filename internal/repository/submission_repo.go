package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/seodap/teacher-api/internal/models"
)

// SubmissionRepository reads rows from the student_submissions table. The
// table is written by the student-facing app; this service never inserts,
// updates, or deletes.
type SubmissionRepository interface {
	ListRecent(ctx context.Context, limit int) ([]models.StudentSubmission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository instantiates the repository.
func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) ListRecent(ctx context.Context, limit int) ([]models.StudentSubmission, error) {
	query := r.db.WithContext(ctx).
		Model(&models.StudentSubmission{}).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var submissions []models.StudentSubmission
	if err := query.Find(&submissions).Error; err != nil {
		return nil, err
	}

	return submissions, nil
}
