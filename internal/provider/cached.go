package provider

import (
	"context"
	"log/slog"
	"time"

	"github.com/spounge-ai/handicap/internal/domain"
	"github.com/spounge-ai/handicap/pkg/cache"
)

const courseCacheEntries = 512

var _ domain.HandicapProvider = (*CachedProvider)(nil)

// CachedProvider keeps course and tee lookups for a fixed TTL. Course data
// changes rarely and is requested far more often than golfers are. Failed
// lookups are never stored.
type CachedProvider struct {
	domain.HandicapProvider
	courses *cache.Cache[domain.CourseQuery, *domain.Course]
	tees    *cache.Cache[domain.TeeQuery, []domain.Tee]
	logger  *slog.Logger
}

func NewCachedProvider(p domain.HandicapProvider, ttl time.Duration, logger *slog.Logger) *CachedProvider {
	return &CachedProvider{
		HandicapProvider: p,
		courses: cache.New(ttl,
			cache.WithMaxEntries[domain.CourseQuery, *domain.Course](courseCacheEntries)),
		tees: cache.New(ttl,
			cache.WithMaxEntries[domain.TeeQuery, []domain.Tee](courseCacheEntries)),
		logger: logger,
	}
}

func (c *CachedProvider) GetCourse(ctx context.Context, q domain.CourseQuery) (*domain.Course, error) {
	if course, ok := c.courses.Get(q); ok {
		c.logger.DebugContext(ctx, "course cache hit", "source", q.Source, "course_id", q.CourseID)
		return course, nil
	}

	course, err := c.HandicapProvider.GetCourse(ctx, q)
	if err != nil {
		return nil, err
	}
	c.courses.Set(q, course)
	return course, nil
}

func (c *CachedProvider) GetTees(ctx context.Context, q domain.TeeQuery) ([]domain.Tee, error) {
	if tees, ok := c.tees.Get(q); ok {
		c.logger.DebugContext(ctx, "tee cache hit", "source", q.Source, "course_id", q.CourseID)
		return tees, nil
	}

	tees, err := c.HandicapProvider.GetTees(ctx, q)
	if err != nil {
		return nil, err
	}
	c.tees.Set(q, tees)
	return tees, nil
}
