package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/seodap/teacher-api/internal/analytics"
	"github.com/seodap/teacher-api/internal/dto"
	"github.com/seodap/teacher-api/internal/models"
	"github.com/seodap/teacher-api/internal/observability"
)

// DashboardService aggregates the teacher dashboard payload.
type DashboardService interface {
	GetDashboard(ctx context.Context, req dto.DashboardRequest) (dto.DashboardResponse, error)
	Refresh(ctx context.Context) error
}

type dashboardService struct {
	feed      SubmissionFeed
	validator *validator.Validate
	zone      *time.Location
	logger    zerolog.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// NewDashboardService constructs the dashboard aggregator.
func NewDashboardService(feed SubmissionFeed, validator *validator.Validate, zone *time.Location, logger zerolog.Logger) DashboardService {
	if zone == nil {
		zone = time.UTC
	}
	return &dashboardService{
		feed:      feed,
		validator: validator,
		zone:      zone,
		logger:    logger.With().Str("component", "dashboard_service").Logger(),
		tracer:    otel.Tracer("github.com/seodap/teacher-api/internal/service/dashboard"),
		now:       time.Now,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, req dto.DashboardRequest) (dto.DashboardResponse, error) {
	ctx, span := s.tracer.Start(ctx, "dashboard.aggregate")
	defer span.End()

	if err := s.validator.Struct(req); err != nil {
		return dto.DashboardResponse{}, err
	}

	filter, err := resolveFilter(req.SubmissionQuery, s.zone)
	if err != nil {
		span.RecordError(err)
		return dto.DashboardResponse{}, err
	}

	records, cacheHit, err := s.feed.Snapshot(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "snapshot_failed")
		return dto.DashboardResponse{}, err
	}

	buildStart := time.Now()
	filtered := analytics.ApplyFilter(records, filter)
	overview := analytics.BuildOverview(filtered)
	stats := analytics.QuestionStats(filtered, models.QuestionIndices())
	students := analytics.SummarizeStudents(filtered)
	observability.DashboardBuild().Observe(time.Since(buildStart).Seconds())

	span.SetAttributes(
		attribute.Int("dashboard.snapshot_records", len(records)),
		attribute.Int("dashboard.filtered_records", len(filtered)),
		attribute.Bool("dashboard.cache_hit", cacheHit),
	)

	return dto.DashboardResponse{
		Overview:      dto.NewOverviewResponse(overview, s.zone),
		QuestionStats: dto.NewQuestionStatResponses(stats),
		Students:      dto.NewStudentSummaryResponses(students),
		GeneratedAt:   s.now().In(s.zone),
		CacheHit:      cacheHit,
	}, nil
}

func (s *dashboardService) Refresh(ctx context.Context) error {
	if err := s.feed.Invalidate(ctx); err != nil {
		return err
	}
	s.logger.Info().Msg("dashboard snapshot refresh requested")
	return nil
}
