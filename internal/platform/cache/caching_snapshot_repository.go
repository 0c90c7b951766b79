// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"survey_backend/internal/feature/analytics/domain/entity"
	"survey_backend/internal/feature/analytics/usecase"
)

// CachingSnapshotRepository decorates a SnapshotRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
type CachingSnapshotRepository struct {
	inner     usecase.SnapshotRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingSnapshotRepository implements SnapshotRepository.
var _ usecase.SnapshotRepository = (*CachingSnapshotRepository)(nil)

// NewCachingSnapshotRepository decorates a SnapshotRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "analytics".
func NewCachingSnapshotRepository(rdb *redis.Client, ttl time.Duration, inner usecase.SnapshotRepository, namespace string) *CachingSnapshotRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "analytics"
	}
	return &CachingSnapshotRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

func (c *CachingSnapshotRepository) surveyKey(surveyID uint) string {
	return fmt.Sprintf("%s:survey:%d", c.namespace, surveyID)
}

// invalidate drops the cache entry for a survey. Best effort: cache deletion
// failures never fail the write.
func (c *CachingSnapshotRepository) invalidate(ctx context.Context, surveyID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.surveyKey(surveyID)).Err()
}

// Create inserts a snapshot and invalidates its cache entry.
func (c *CachingSnapshotRepository) Create(ctx context.Context, snapshot *entity.SurveyAnalytics) error {
	if err := c.inner.Create(ctx, snapshot); err != nil {
		return err
	}
	c.invalidate(ctx, snapshot.SurveyID)
	return nil
}

// FindAll always goes to the database; the listing is admin-facing and rare.
func (c *CachingSnapshotRepository) FindAll(ctx context.Context) ([]entity.SurveyAnalytics, error) {
	return c.inner.FindAll(ctx)
}

// FindByID always goes to the database. Only the per-survey lookup is hot.
func (c *CachingSnapshotRepository) FindByID(ctx context.Context, id uint) (*entity.SurveyAnalytics, error) {
	return c.inner.FindByID(ctx, id)
}

// FindBySurveyID retrieves a snapshot, checking cache first then falling back
// to the database.
func (c *CachingSnapshotRepository) FindBySurveyID(ctx context.Context, surveyID uint) (*entity.SurveyAnalytics, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindBySurveyID(ctx, surveyID)
	}

	key := c.surveyKey(surveyID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.SurveyAnalytics
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Upsert writes a snapshot and invalidates its cache entry.
func (c *CachingSnapshotRepository) Upsert(ctx context.Context, snapshot *entity.SurveyAnalytics) error {
	if err := c.inner.Upsert(ctx, snapshot); err != nil {
		return err
	}
	c.invalidate(ctx, snapshot.SurveyID)
	return nil
}

// UpsertTallies writes tally columns and invalidates the cache entry.
func (c *CachingSnapshotRepository) UpsertTallies(ctx context.Context, snapshot *entity.SurveyAnalytics) error {
	if err := c.inner.UpsertTallies(ctx, snapshot); err != nil {
		return err
	}
	c.invalidate(ctx, snapshot.SurveyID)
	return nil
}

// Update saves a snapshot and invalidates its cache entry.
func (c *CachingSnapshotRepository) Update(ctx context.Context, snapshot *entity.SurveyAnalytics) error {
	if err := c.inner.Update(ctx, snapshot); err != nil {
		return err
	}
	c.invalidate(ctx, snapshot.SurveyID)
	return nil
}

// Delete removes a snapshot and invalidates its cache entry. The row is read
// first because invalidation needs the survey id, not the row id.
func (c *CachingSnapshotRepository) Delete(ctx context.Context, id uint) error {
	var surveyID uint
	if snapshot, err := c.inner.FindByID(ctx, id); err == nil {
		surveyID = snapshot.SurveyID
	}

	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	if surveyID != 0 {
		c.invalidate(ctx, surveyID)
	}
	return nil
}
