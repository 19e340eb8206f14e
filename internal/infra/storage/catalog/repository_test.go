package catalog

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_GetLocation(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT id, name, timezone FROM locations WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "timezone"}).AddRow(int64(1), "Downtown", "Europe/Berlin"))
	mock.ExpectQuery(`FROM locations`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "timezone"}))

	got, err := repo.GetLocation(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", got.Timezone)

	_, err = repo.GetLocation(context.Background(), 2)
	assert.ErrorIs(t, err, ErrLocationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetService(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`FROM services WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "location_id", "name", "duration_minutes", "price"}).
			AddRow(int64(3), int64(1), "Coloring", 90, 120.5))

	got, err := repo.GetService(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 90, got.DurationMinutes)
	assert.Equal(t, 120.5, got.Price)
}

func TestRepository_GetStaff_DecodesWeeklyHours(t *testing.T) {
	repo, mock := newRepo(t)

	hours := []byte(`{"monday": {"start": "09:00", "end": "17:00"}, "sunday": "off"}`)
	mock.ExpectQuery(`FROM staff WHERE id = \$1`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "location_id", "name", "weekly_hours"}).
			AddRow(int64(4), int64(1), "Mia", hours))

	got, err := repo.GetStaff(context.Background(), 4)
	require.NoError(t, err)
	require.NotNil(t, got.WeeklyHours["monday"])
	assert.Equal(t, "17:00", got.WeeklyHours["monday"].End.String())
	assert.Nil(t, got.WeeklyHours["sunday"])
}

func TestRepository_GetStaff_BadWeeklyHours(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`FROM staff`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "location_id", "name", "weekly_hours"}).
			AddRow(int64(4), int64(1), "Mia", []byte(`{"monday": "closed"}`)))

	_, err := repo.GetStaff(context.Background(), 4)
	assert.ErrorIs(t, err, ErrScanRow)
}

func TestRepository_ListStaffByLocation(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`FROM staff WHERE location_id = \$1 ORDER BY id ASC`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "location_id", "name", "weekly_hours"}).
			AddRow(int64(1), int64(1), "Ann", []byte(`{}`)).
			AddRow(int64(2), int64(1), "Bob", []byte(`{"friday": "off"}`)))

	got, err := repo.ListStaffByLocation(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Ann", got[0].Name)
	assert.Equal(t, int64(2), got[1].ID)
}
