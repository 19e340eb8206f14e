package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type countingReader struct {
	calls map[string]int
}

func (r *countingReader) GetLocation(_ context.Context, id int64) (*domain.Location, error) {
	r.calls["location"]++
	if id != 1 {
		return nil, ErrLocationNotFound
	}
	return &domain.Location{ID: 1, Name: "Downtown"}, nil
}

func (r *countingReader) GetService(_ context.Context, id int64) (*domain.Service, error) {
	r.calls["service"]++
	return &domain.Service{ID: id, DurationMinutes: 30}, nil
}

func (r *countingReader) GetStaff(_ context.Context, id int64) (*domain.Staff, error) {
	r.calls["staff"]++
	return &domain.Staff{ID: id}, nil
}

func (r *countingReader) ListStaffByLocation(_ context.Context, locationID int64) ([]*domain.Staff, error) {
	r.calls["list"]++
	return []*domain.Staff{{ID: 1, LocationID: locationID}}, nil
}

func TestCachedRepository(t *testing.T) {
	next := &countingReader{calls: map[string]int{}}
	repo := NewCachedRepository(next, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.GetLocation(ctx, 1)
		require.NoError(t, err)
		_, err = repo.GetService(ctx, 7)
		require.NoError(t, err)
		_, err = repo.GetStaff(ctx, 8)
		require.NoError(t, err)
		staff, err := repo.ListStaffByLocation(ctx, 1)
		require.NoError(t, err)
		require.Len(t, staff, 1)
	}

	assert.Equal(t, map[string]int{"location": 1, "service": 1, "staff": 1, "list": 1}, next.calls)

	repo.Flush()
	_, err := repo.GetService(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls["service"])
}

func TestCachedRepository_ErrorsAreNotCached(t *testing.T) {
	next := &countingReader{calls: map[string]int{}}
	repo := NewCachedRepository(next, time.Minute)

	for i := 0; i < 2; i++ {
		_, err := repo.GetLocation(context.Background(), 42)
		assert.ErrorIs(t, err, ErrLocationNotFound)
	}
	assert.Equal(t, 2, next.calls["location"])
}
