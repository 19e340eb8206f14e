package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Reader is the read side of the catalog, implemented by Repository and the memory store.
type Reader interface {
	GetLocation(ctx context.Context, id int64) (*domain.Location, error)
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	GetStaff(ctx context.Context, id int64) (*domain.Staff, error)
	ListStaffByLocation(ctx context.Context, locationID int64) ([]*domain.Staff, error)
}

// CachedRepository keeps successful catalog reads for a TTL. Errors, including
// not-found, are never cached. Cached values are shared and must not be mutated.
type CachedRepository struct {
	next  Reader
	cache *cache.Cache
}

func NewCachedRepository(next Reader, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *CachedRepository) GetLocation(ctx context.Context, id int64) (*domain.Location, error) {
	return cached(c, fmt.Sprintf("location:%d", id), func() (*domain.Location, error) {
		return c.next.GetLocation(ctx, id)
	})
}

func (c *CachedRepository) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	return cached(c, fmt.Sprintf("service:%d", id), func() (*domain.Service, error) {
		return c.next.GetService(ctx, id)
	})
}

func (c *CachedRepository) GetStaff(ctx context.Context, id int64) (*domain.Staff, error) {
	return cached(c, fmt.Sprintf("staff:%d", id), func() (*domain.Staff, error) {
		return c.next.GetStaff(ctx, id)
	})
}

func (c *CachedRepository) ListStaffByLocation(ctx context.Context, locationID int64) ([]*domain.Staff, error) {
	return cached(c, fmt.Sprintf("location:%d:staff", locationID), func() ([]*domain.Staff, error) {
		return c.next.ListStaffByLocation(ctx, locationID)
	})
}

// Flush drops every cached entry.
func (c *CachedRepository) Flush() {
	c.cache.Flush()
}

func cached[T any](c *CachedRepository, key string, load func() (T, error)) (T, error) {
	if v, ok := c.cache.Get(key); ok {
		return v.(T), nil
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	c.cache.SetDefault(key, v)
	return v, nil
}
