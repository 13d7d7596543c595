package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/seodap/teacher-api/internal/dto"
	"github.com/seodap/teacher-api/internal/models"
)

func setupSubmissionService(feed SubmissionFeed) SubmissionService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return NewSubmissionService(feed, validate, time.UTC, testLogger())
}

func TestSubmissionListPagination(t *testing.T) {
	base := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)
	records := make([]models.StudentSubmission, 0, 5)
	for i := 5; i >= 1; i-- {
		records = append(records, submissionAt(uint(i), fmt.Sprintf("stu-%03d", i), base.Add(time.Duration(i)*time.Minute)))
	}

	service := setupSubmissionService(&stubFeed{records: records})

	resp, err := service.List(context.Background(), dto.SubmissionListRequest{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	require.Equal(t, uint(3), resp.Items[0].ID)
	require.Equal(t, uint(2), resp.Items[1].ID)
	require.Equal(t, 2, resp.Pagination.Page)
	require.Equal(t, 2, resp.Pagination.PageSize)
	require.Equal(t, int64(5), resp.Pagination.TotalItems)
	require.Equal(t, 3, resp.Pagination.TotalPages)

	beyond, err := service.List(context.Background(), dto.SubmissionListRequest{Page: 99, PageSize: 2})
	require.NoError(t, err)
	require.Empty(t, beyond.Items)
	require.Equal(t, 3, beyond.Pagination.TotalPages)
}

func TestSubmissionListDefaultsPagination(t *testing.T) {
	service := setupSubmissionService(&stubFeed{records: []models.StudentSubmission{
		submissionAt(1, "stu-001", time.Now().UTC()),
	}})

	resp, err := service.List(context.Background(), dto.SubmissionListRequest{Page: -3, PageSize: 500})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Pagination.Page)
	require.Equal(t, 100, resp.Pagination.PageSize)
}

func TestSubmissionListColumnToggles(t *testing.T) {
	record := models.StudentSubmission{
		ID:         1,
		StudentID:  "stu-001",
		Answer1:    strPtr("서울은 한국의 수도입니다"),
		Feedback1:  strPtr("O: 정확합니다"),
		Guideline1: strPtr("수도 명칭을 확인"),
		CreatedAt:  time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC),
	}

	service := setupSubmissionService(&stubFeed{records: []models.StudentSubmission{record}})

	plain, err := service.List(context.Background(), dto.SubmissionListRequest{})
	require.NoError(t, err)
	require.Len(t, plain.Items, 1)
	require.Nil(t, plain.Items[0].Questions[0].Answer)
	require.Nil(t, plain.Items[0].Questions[0].Guideline)
	require.NotNil(t, plain.Items[0].Questions[0].Feedback)

	full, err := service.List(context.Background(), dto.SubmissionListRequest{IncludeAnswers: true, IncludeGuidelines: true})
	require.NoError(t, err)
	require.Equal(t, "서울은 한국의 수도입니다", *full.Items[0].Questions[0].Answer)
	require.Equal(t, "수도 명칭을 확인", *full.Items[0].Questions[0].Guideline)
}

func TestSubmissionListOutcomes(t *testing.T) {
	record := submissionAt(1, "stu-001", time.Now().UTC(), strPtr("O 좋은 답변입니다"), strPtr("X: 핵심이 빠졌습니다"), nil)

	service := setupSubmissionService(&stubFeed{records: []models.StudentSubmission{record}})

	resp, err := service.List(context.Background(), dto.SubmissionListRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)

	questions := resp.Items[0].Questions
	require.Equal(t, "correct", questions[0].Outcome)
	require.Equal(t, "incorrect", questions[1].Outcome)
	require.Equal(t, "indeterminate", questions[2].Outcome)
	require.Equal(t, 1, resp.Items[0].CorrectCount)
}

func TestStudentDetailExactMatch(t *testing.T) {
	base := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)
	feed := &stubFeed{records: []models.StudentSubmission{
		submissionAt(3, "stu-10", base.Add(2*time.Hour), strPtr("O: fine")),
		submissionAt(2, "stu-1", base.Add(time.Hour), strPtr("X: wrong")),
		submissionAt(1, "stu-1", base, strPtr("O: good")),
	}}

	service := setupSubmissionService(feed)

	// the substring filter from the shared query must not widen the match
	resp, err := service.StudentDetail(context.Background(), "stu-1", dto.StudentDetailRequest{
		SubmissionQuery: dto.SubmissionQuery{Student: "10"},
	})
	require.NoError(t, err)
	require.Equal(t, "stu-1", resp.StudentID)
	require.Len(t, resp.Submissions, 2)
	require.Equal(t, uint(2), resp.Submissions[0].ID)
	require.Equal(t, uint(1), resp.Submissions[1].ID)
}

func TestStudentDetailIncludesFullReview(t *testing.T) {
	record := models.StudentSubmission{
		ID:         1,
		StudentID:  "stu-001",
		Answer1:    strPtr("answer"),
		Feedback1:  strPtr("O: ok"),
		Guideline1: strPtr("rubric"),
		CreatedAt:  time.Now().UTC(),
	}

	service := setupSubmissionService(&stubFeed{records: []models.StudentSubmission{record}})

	resp, err := service.StudentDetail(context.Background(), "stu-001", dto.StudentDetailRequest{})
	require.NoError(t, err)
	require.NotNil(t, resp.Submissions[0].Questions[0].Answer)
	require.NotNil(t, resp.Submissions[0].Questions[0].Guideline)
}

func TestStudentDetailNotFound(t *testing.T) {
	service := setupSubmissionService(&stubFeed{records: []models.StudentSubmission{
		submissionAt(1, "stu-001", time.Now().UTC()),
	}})

	_, err := service.StudentDetail(context.Background(), "ghost", dto.StudentDetailRequest{})
	require.ErrorIs(t, err, ErrStudentNotFound)

	_, err = service.StudentDetail(context.Background(), "   ", dto.StudentDetailRequest{})
	require.ErrorIs(t, err, ErrStudentNotFound)
}

func TestStudentDetailHonorsDateFilter(t *testing.T) {
	service := setupSubmissionService(&stubFeed{records: []models.StudentSubmission{
		submissionAt(1, "stu-001", time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)),
	}})

	_, err := service.StudentDetail(context.Background(), "stu-001", dto.StudentDetailRequest{
		SubmissionQuery: dto.SubmissionQuery{StartDate: "2026-04-01"},
	})
	require.ErrorIs(t, err, ErrStudentNotFound)
}
