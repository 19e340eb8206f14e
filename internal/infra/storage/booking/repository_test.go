package booking

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/pgerr"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

func newRepo(t *testing.T) (*Repository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), db, mock
}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		LocationID:      1,
		StaffID:         2,
		ServiceID:       3,
		ServiceName:     "Haircut",
		ServicePrice:    35,
		DurationMinutes: 30,
		StartAt:         time.Date(2026, time.November, 2, 10, 0, 0, 0, time.UTC),
		Client:          domain.ClientInfo{Name: "Anna", Phone: "+100", Email: "anna@example.com"},
		Notes:           ptr.Ptr("first visit"),
	}
}

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows(bookingColumns)
}

func TestRepository_Create(t *testing.T) {
	repo, _, mock := newRepo(t)
	b := sampleBooking()
	createdAt := time.Date(2026, time.October, 30, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings (location_id,staff_id,service_id,service_name,service_price,duration_minutes,start_at,end_at,client_name,client_phone,client_email,notes) VALUES")).
		WithArgs(int64(1), int64(2), int64(3), "Haircut", 35.0, 30, b.StartAt, b.StartAt.Add(30*time.Minute), "Anna", "+100", "anna@example.com", b.Notes).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(77), createdAt))

	got, err := repo.Create(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, int64(77), got.ID)
	assert.Equal(t, createdAt, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_OverlapConstraint(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: pgerr.CodeExclusionViolation, Constraint: "bookings_no_overlap"})

	_, err := repo.Create(context.Background(), sampleBooking())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_SerializationFailure(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: pgerr.CodeSerializationFailure})

	_, err := repo.Create(context.Background(), sampleBooking())
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.True(t, pgerr.IsSerializationFailure(err))
}

func TestRepository_GetByID(t *testing.T) {
	repo, _, mock := newRepo(t)
	b := sampleBooking()

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(bookingRows().AddRow(
			int64(5), b.LocationID, b.StaffID, b.ServiceID, b.ServiceName, b.ServicePrice, b.DurationMinutes,
			b.StartAt, b.Client.Name, b.Client.Phone, b.Client.Email, nil, b.StartAt,
		))

	got, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	assert.Equal(t, "Anna", got.Client.Name)
	assert.Nil(t, got.Notes)
	assert.Equal(t, b.StartAt.Add(30*time.Minute), got.End())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs(int64(5)).
		WillReturnRows(bookingRows())

	_, err := repo.GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_GetWithFilter(t *testing.T) {
	repo, _, mock := newRepo(t)
	from := time.Date(2026, time.November, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	b := sampleBooking()

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE location_id = $1 AND start_at < $2 AND end_at > $3 ORDER BY start_at ASC, staff_id ASC")).
		WithArgs(int64(1), to, from).
		WillReturnRows(bookingRows().AddRow(
			int64(9), b.LocationID, b.StaffID, b.ServiceID, b.ServiceName, b.ServicePrice, b.DurationMinutes,
			b.StartAt, b.Client.Name, b.Client.Phone, b.Client.Email, "first visit", b.StartAt,
		))

	got, err := repo.GetWithFilter(context.Background(), domain.BookingsFilter{
		LocationID: ptr.Ptr(int64(1)),
		From:       &from,
		To:         &to,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Notes)
	assert.Equal(t, "first visit", *got[0].Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetWithFilter_StaffSet(t *testing.T) {
	repo, _, mock := newRepo(t)
	from := time.Date(2026, time.November, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE staff_id IN ($1,$2) AND start_at < $3 AND end_at > $4 ORDER BY start_at ASC, staff_id ASC")).
		WithArgs(int64(1), int64(2), to, from).
		WillReturnRows(bookingRows())

	got, err := repo.GetWithFilter(context.Background(), domain.StaffBookingsFilter(
		[]*domain.Staff{{ID: 1}, {ID: 2}}, from, to,
	))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetWithFilter_LocksStaffRowsInTx(t *testing.T) {
	repo, db, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM bookings WHERE staff_id = \$1 ORDER BY start_at ASC, staff_id ASC FOR UPDATE`).
		WithArgs(int64(2)).
		WillReturnRows(bookingRows())
	mock.ExpectRollback()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	got, err := repo.GetWithFilter(ctx, domain.BookingsFilter{StaffID: ptr.Ptr(int64(2))})
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec(`DELETE FROM bookings WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM bookings WHERE id = \$1`).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 3))
	assert.ErrorIs(t, repo.Delete(context.Background(), 4), ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
