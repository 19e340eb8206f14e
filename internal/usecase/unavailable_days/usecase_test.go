package unavailable_days

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

func newFixture(t *testing.T, now time.Time) (*UseCase, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	store.PutLocation(&domain.Location{ID: 1, Name: "Downtown", Timezone: "Europe/Berlin"})
	store.PutService(&domain.Service{ID: 10, LocationID: 1, Name: "Haircut", DurationMinutes: 60, Price: 35})
	store.PutStaff(&domain.Staff{ID: 1, LocationID: 1, Name: "Ann", WeeklyHours: domain.WeeklyHours{
		"monday":    {Start: "09:00", End: "10:00"},
		"tuesday":   {Start: "09:00", End: "10:00"},
		"wednesday": {Start: "09:00", End: "10:00"},
		"thursday":  {Start: "09:00", End: "10:00"},
		"friday":    {Start: "09:00", End: "10:00"},
	}})

	uc := NewUseCase(store, store, time.UTC, logger.NewNop())
	uc.timeProvider = fixedTime{now: now}
	return uc, store
}

func TestExecute_WeekendsAndBookedDay(t *testing.T) {
	uc, store := newFixture(t, time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC))
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	_, err = store.Create(context.Background(), &domain.Booking{
		LocationID: 1, StaffID: 1, ServiceID: 10, DurationMinutes: 60,
		StartAt: time.Date(2026, time.November, 4, 9, 0, 0, 0, berlin),
	})
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), &Request{
		LocationID: 1,
		ServiceID:  10,
		Staff:      domain.SpecificStaff(1),
		Month:      time.Date(2026, time.November, 20, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-11-01", resp.Month.Format(domain.DateFormat))
	assert.Contains(t, resp.UnavailableDays, "2026-11-04")
	assert.Contains(t, resp.UnavailableDays, "2026-11-01", "sunday")
	assert.Contains(t, resp.UnavailableDays, "2026-11-07", "saturday")
	assert.NotContains(t, resp.UnavailableDays, "2026-11-03")
	assert.Len(t, resp.UnavailableDays, 10)
}

func TestExecute_PastDaysUnavailable(t *testing.T) {
	uc, _ := newFixture(t, time.Date(2026, time.November, 3, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{
		LocationID: 1,
		ServiceID:  10,
		Month:      time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2026-11-01", "2026-11-02", "2026-11-03"}, resp.UnavailableDays[:3])
	assert.NotContains(t, resp.UnavailableDays, "2026-11-04")
}

func TestExecute_Errors(t *testing.T) {
	uc, _ := newFixture(t, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC))
	month := time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{LocationID: 1, ServiceID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{LocationID: 5, ServiceID: 10, Month: month})
	assert.ErrorIs(t, err, ErrLocationNotFound)

	_, err = uc.Execute(context.Background(), &Request{LocationID: 1, ServiceID: 11, Month: month})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = uc.Execute(context.Background(), &Request{LocationID: 1, ServiceID: 10, Staff: domain.SpecificStaff(9), Month: month})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}
