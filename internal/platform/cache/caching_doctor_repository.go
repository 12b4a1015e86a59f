// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"clinic_backend/internal/feature/doctor/domain/entity"
	"clinic_backend/internal/feature/doctor/usecase"
)

const (
	defaultDoctorTTL       = 5 * time.Minute
	defaultDoctorNamespace = "doctors"
	scanBatch              = 200
)

var _ usecase.DoctorRepository = (*CachingDoctorRepository)(nil)

// CachingDoctorRepository decorates a DoctorRepository with Redis caching of
// directory listings. Lookups by ID and counts go straight to the inner repository.
type CachingDoctorRepository struct {
	inner     usecase.DoctorRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingDoctorRepository decorates a DoctorRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "doctors".
// A nil client disables caching entirely.
func NewCachingDoctorRepository(rdb *redis.Client, ttl time.Duration, inner usecase.DoctorRepository, namespace string) *CachingDoctorRepository {
	if ttl <= 0 {
		ttl = defaultDoctorTTL
	}
	if namespace == "" {
		namespace = defaultDoctorNamespace
	}
	return &CachingDoctorRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// List returns the filtered directory, checking the cache first.
func (c *CachingDoctorRepository) List(ctx context.Context, f entity.Filter) ([]entity.Doctor, error) {
	if c.rdb == nil {
		return c.inner.List(ctx, f)
	}

	key := c.cacheKey(f)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Doctor
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	} else if err != nil && err != redis.Nil {
		slog.Warn("doctor cache read failed; falling back to database", "key", key, "error", err)
	}

	// 2) Fallback to database
	out, err := c.inner.List(ctx, f)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID is not cached.
func (c *CachingDoctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	return c.inner.FindByID(ctx, id)
}

// Count is not cached.
func (c *CachingDoctorRepository) Count(ctx context.Context) (int64, error) {
	return c.inner.Count(ctx)
}

// Create stores the doctor and drops every cached listing, since any filter may now match it.
func (c *CachingDoctorRepository) Create(ctx context.Context, d *entity.Doctor) error {
	if err := c.inner.Create(ctx, d); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	if err := c.deleteByPattern(ctx, c.namespace+":*"); err != nil {
		slog.Warn("doctor cache invalidation failed", "namespace", c.namespace, "error", err)
	}
	return nil
}

// cacheKey generates a cache key for a specific filter.
// Search is case-insensitive, so it is lowercased before keying.
func (c *CachingDoctorRepository) cacheKey(f entity.Filter) string {
	return fmt.Sprintf("%s:%s:%s",
		c.namespace,
		safe(f.Specialty),
		safe(strings.ToLower(f.Search)),
	)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingDoctorRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes a key segment reversibly. ':' and '*' never appear unescaped.
func safe(s string) string {
	return url.QueryEscape(s)
}
