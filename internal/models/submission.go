package models

import "time"

// StudentSubmission is one row of the student_submissions table: a single
// assessment attempt with up to three answered questions, the AI feedback
// stored per question, and the rubric the grader was shown.
//
// The table is owned and written by the student-facing app; this service only
// ever reads it, so column names are pinned explicitly rather than derived
// from gorm's naming strategy.
type StudentSubmission struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	StudentID  string    `gorm:"column:student_id;size:64;not null;index" json:"student_id"`
	Model      *string   `gorm:"column:model;size:128" json:"model"`
	Answer1    *string   `gorm:"column:answer_1;type:text" json:"answer_1"`
	Answer2    *string   `gorm:"column:answer_2;type:text" json:"answer_2"`
	Answer3    *string   `gorm:"column:answer_3;type:text" json:"answer_3"`
	Feedback1  *string   `gorm:"column:feedback_1;type:text" json:"feedback_1"`
	Feedback2  *string   `gorm:"column:feedback_2;type:text" json:"feedback_2"`
	Feedback3  *string   `gorm:"column:feedback_3;type:text" json:"feedback_3"`
	Guideline1 *string   `gorm:"column:guideline_1;type:text" json:"guideline_1"`
	Guideline2 *string   `gorm:"column:guideline_2;type:text" json:"guideline_2"`
	Guideline3 *string   `gorm:"column:guideline_3;type:text" json:"guideline_3"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName pins the externally owned table name.
func (StudentSubmission) TableName() string { return "student_submissions" }

// QuestionIndices returns the question slots every submission row carries,
// in display order.
func QuestionIndices() []int { return []int{1, 2, 3} }

// Answer returns the answer text for question q, or nil when q is not a
// known question index.
func (s StudentSubmission) Answer(q int) *string {
	switch q {
	case 1:
		return s.Answer1
	case 2:
		return s.Answer2
	case 3:
		return s.Answer3
	}
	return nil
}

// Feedback returns the AI feedback text for question q, or nil when q is not
// a known question index.
func (s StudentSubmission) Feedback(q int) *string {
	switch q {
	case 1:
		return s.Feedback1
	case 2:
		return s.Feedback2
	case 3:
		return s.Feedback3
	}
	return nil
}

// Guideline returns the grading rubric for question q, or nil when q is not
// a known question index.
func (s StudentSubmission) Guideline(q int) *string {
	switch q {
	case 1:
		return s.Guideline1
	case 2:
		return s.Guideline2
	case 3:
		return s.Guideline3
	}
	return nil
}

// HasFeedback reports whether at least one question of the submission carries
// feedback. Blank feedback still counts as present; only missing columns do
// not.
func (s StudentSubmission) HasFeedback() bool {
	for _, q := range QuestionIndices() {
		if s.Feedback(q) != nil {
			return true
		}
	}
	return false
}
