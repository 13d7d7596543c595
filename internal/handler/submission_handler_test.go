package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/seodap/teacher-api/internal/dto"
	"github.com/seodap/teacher-api/internal/handler"
	"github.com/seodap/teacher-api/internal/service"
)

type stubSubmissionService struct {
	listResp    dto.SubmissionListResponse
	listErr     error
	detailResp  dto.StudentDetailResponse
	detailErr   error
	lastList    dto.SubmissionListRequest
	lastStudent string
}

func (s *stubSubmissionService) List(_ context.Context, req dto.SubmissionListRequest) (dto.SubmissionListResponse, error) {
	s.lastList = req
	if s.listErr != nil {
		return dto.SubmissionListResponse{}, s.listErr
	}
	return s.listResp, nil
}

func (s *stubSubmissionService) StudentDetail(_ context.Context, studentID string, req dto.StudentDetailRequest) (dto.StudentDetailResponse, error) {
	s.lastStudent = studentID
	if s.detailErr != nil {
		return dto.StudentDetailResponse{}, s.detailErr
	}
	return s.detailResp, nil
}

func setupSubmissionApp(svc service.SubmissionService) *fiber.App {
	app := fiber.New()
	handler.NewSubmissionHandler(svc, zerolog.Nop()).Register(app.Group("/api/v1/teacher"))
	return app
}

func TestSubmissionHandlerListPassesQuery(t *testing.T) {
	svc := &stubSubmissionService{listResp: dto.SubmissionListResponse{
		Items: []dto.SubmissionRowResponse{
			{ID: 1, StudentID: "stu-001", SubmittedAt: time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)},
		},
		Pagination: dto.PaginationMeta{Page: 2, PageSize: 5, TotalItems: 11, TotalPages: 3},
	}}
	app := setupSubmissionApp(svc)

	target := "/api/v1/teacher/submissions?page=2&page_size=5&student=kim&include_answers=true&with_feedback=true"
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Success bool                       `json:"success"`
		Data    dto.SubmissionListResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	resp.Body.Close()

	require.True(t, payload.Success)
	require.Len(t, payload.Data.Items, 1)
	require.Equal(t, int64(11), payload.Data.Pagination.TotalItems)

	require.Equal(t, 2, svc.lastList.Page)
	require.Equal(t, 5, svc.lastList.PageSize)
	require.Equal(t, "kim", svc.lastList.Student)
	require.True(t, svc.lastList.IncludeAnswers)
	require.False(t, svc.lastList.IncludeGuidelines)
	require.True(t, svc.lastList.WithFeedback)
}

func TestSubmissionHandlerListRejectsBadPage(t *testing.T) {
	svc := &stubSubmissionService{}
	app := setupSubmissionApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/teacher/submissions?page=abc", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSubmissionHandlerStudentDetail(t *testing.T) {
	svc := &stubSubmissionService{detailResp: dto.StudentDetailResponse{
		StudentID: "stu-001",
		Submissions: []dto.SubmissionRowResponse{
			{ID: 3, StudentID: "stu-001", SubmittedAt: time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)},
		},
	}}
	app := setupSubmissionApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/teacher/students/stu-001", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "stu-001", svc.lastStudent)

	var payload struct {
		Success bool                      `json:"success"`
		Message string                    `json:"message"`
		Data    dto.StudentDetailResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	resp.Body.Close()

	require.True(t, payload.Success)
	require.Equal(t, "student submissions retrieved", payload.Message)
	require.Len(t, payload.Data.Submissions, 1)
}

func TestSubmissionHandlerStudentNotFound(t *testing.T) {
	svc := &stubSubmissionService{detailErr: service.ErrStudentNotFound}
	app := setupSubmissionApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/teacher/students/ghost", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var payload struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	resp.Body.Close()

	require.False(t, payload.Success)
	require.Equal(t, "student not found", payload.Message)
}

var _ service.SubmissionService = (*stubSubmissionService)(nil)
