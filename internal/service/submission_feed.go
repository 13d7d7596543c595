package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/seodap/teacher-api/internal/models"
	"github.com/seodap/teacher-api/internal/observability"
	"github.com/seodap/teacher-api/internal/repository"
)

const snapshotCacheKey = "submissions:snapshot:v1"

// SubmissionFeed hands out the recent-submission snapshot every teacher
// endpoint aggregates over. The snapshot is newest first and capped at the
// configured fetch limit.
type SubmissionFeed interface {
	Snapshot(ctx context.Context) ([]models.StudentSubmission, bool, error)
	Invalidate(ctx context.Context) error
}

type submissionFeed struct {
	repo       repository.SubmissionRepository
	cache      *redis.Client
	ttl        time.Duration
	fetchLimit int
	logger     zerolog.Logger
}

// NewSubmissionFeed builds the snapshot feed. A nil cache client disables
// caching and every Snapshot call reads straight from the database.
func NewSubmissionFeed(repo repository.SubmissionRepository, cache *redis.Client, ttl time.Duration, fetchLimit int, logger zerolog.Logger) SubmissionFeed {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if fetchLimit <= 0 {
		fetchLimit = 2000
	}
	return &submissionFeed{
		repo:       repo,
		cache:      cache,
		ttl:        ttl,
		fetchLimit: fetchLimit,
		logger:     logger.With().Str("component", "submission_feed").Logger(),
	}
}

// Snapshot returns the newest submissions, serving from the cache while the
// snapshot is fresh. The second return reports whether the cache served the
// data.
func (f *submissionFeed) Snapshot(ctx context.Context) ([]models.StudentSubmission, bool, error) {
	if f.cache != nil {
		cached, err := f.cache.Get(ctx, snapshotCacheKey).Result()
		if err == nil {
			var records []models.StudentSubmission
			if unmarshalErr := json.Unmarshal([]byte(cached), &records); unmarshalErr == nil {
				observability.SnapshotCache().WithLabelValues("hit").Inc()
				return records, true, nil
			}
		} else if err != redis.Nil {
			f.logger.Warn().Err(err).Msg("failed to read snapshot cache")
			observability.SnapshotCache().WithLabelValues("error").Inc()
		}
	}

	records, err := f.repo.ListRecent(ctx, f.fetchLimit)
	if err != nil {
		return nil, false, fmt.Errorf("fetch submission snapshot: %w", err)
	}

	if f.cache != nil {
		if payload, err := json.Marshal(records); err == nil {
			if err := f.cache.Set(ctx, snapshotCacheKey, payload, f.ttl).Err(); err != nil {
				f.logger.Warn().Err(err).Msg("failed to store snapshot cache")
			}
		}
	}

	observability.SnapshotCache().WithLabelValues("miss").Inc()
	return records, false, nil
}

// Invalidate drops the cached snapshot so the next read hits the database.
func (f *submissionFeed) Invalidate(ctx context.Context) error {
	if f.cache == nil {
		return nil
	}
	if err := f.cache.Del(ctx, snapshotCacheKey).Err(); err != nil {
		return fmt.Errorf("invalidate submission snapshot: %w", err)
	}
	f.logger.Info().Msg("submission snapshot invalidated")
	return nil
}
