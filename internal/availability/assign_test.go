package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

func TestResolveStaff_Explicit(t *testing.T) {
	staff := staffMember(1, weekdays("09:00", "17:00"))
	bookings := []*domain.Booking{booking(1, at(monday, "10:00"), 30)}

	tests := []struct {
		name    string
		start   string
		wantErr error
	}{
		{name: "free", start: "10:30"},
		{name: "touching previous", start: "09:30"},
		{name: "overlaps booking", start: "10:15", wantErr: ErrStaffUnavailable},
		{name: "before opening", start: "08:45", wantErr: ErrStaffUnavailable},
		{name: "runs past closing", start: "16:45", wantErr: ErrStaffUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveStaff(AssignQuery{
				Service:    service(30),
				Start:      at(monday, tt.start),
				Selector:   domain.SpecificStaff(1),
				LocationID: testLocationID,
				Staff:      []*domain.Staff{staff},
				Bookings:   bookings,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), got.ID)
		})
	}
}

func TestResolveStaff_ExplicitNeverFallsBack(t *testing.T) {
	busy := staffMember(1, weekdays("09:00", "17:00"))
	free := staffMember(2, weekdays("09:00", "17:00"))

	_, err := ResolveStaff(AssignQuery{
		Service:    service(30),
		Start:      at(monday, "10:00"),
		Selector:   domain.SpecificStaff(1),
		LocationID: testLocationID,
		Staff:      []*domain.Staff{busy, free},
		Bookings:   []*domain.Booking{booking(1, at(monday, "10:00"), 30)},
	})

	assert.ErrorIs(t, err, ErrStaffUnavailable)
}

func TestResolveStaff_ExplicitOtherLocation(t *testing.T) {
	staff := staffMember(1, weekdays("09:00", "17:00"))
	staff.LocationID = 2

	_, err := ResolveStaff(AssignQuery{
		Service:    service(30),
		Start:      at(monday, "10:00"),
		Selector:   domain.SpecificStaff(1),
		LocationID: testLocationID,
		Staff:      []*domain.Staff{staff},
	})

	assert.ErrorIs(t, err, ErrStaffUnavailable)
}

func TestResolveStaff_AnyKeepsCallerOrder(t *testing.T) {
	a := staffMember(3, weekdays("09:00", "17:00"))
	b := staffMember(1, weekdays("09:00", "17:00"))

	got, err := ResolveStaff(AssignQuery{
		Service:    service(30),
		Start:      at(monday, "11:00"),
		LocationID: testLocationID,
		Staff:      []*domain.Staff{a, b},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
}

func TestResolveStaff_AnySkipsBusyAndOff(t *testing.T) {
	off := staffMember(1, domain.WeeklyHours{"monday": nil})
	busy := staffMember(2, weekdays("09:00", "17:00"))
	free := staffMember(3, weekdays("09:00", "17:00"))

	got, err := ResolveStaff(AssignQuery{
		Service:    service(60),
		Start:      at(monday, "14:00"),
		LocationID: testLocationID,
		Staff:      []*domain.Staff{off, busy, free},
		Bookings:   []*domain.Booking{booking(2, at(monday, "14:30"), 15)},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
}

func TestResolveStaff_AnyNoneFree(t *testing.T) {
	a := staffMember(1, weekdays("09:00", "12:00"))

	_, err := ResolveStaff(AssignQuery{
		Service:    service(60),
		Start:      at(monday, "11:30"),
		LocationID: testLocationID,
		Staff:      []*domain.Staff{a},
	})
	assert.ErrorIs(t, err, ErrNoStaffAvailable)

	_, err = ResolveStaff(AssignQuery{
		Service:    service(60),
		Start:      at(monday, "10:00"),
		LocationID: testLocationID,
	})
	assert.ErrorIs(t, err, ErrNoStaffAvailable)
}

func TestResolveStaff_BreaksBlockAssignment(t *testing.T) {
	staff := staffMember(1, weekdays("09:00", "17:30", domain.TimeRange{Start: "12:00", End: "13:00"}))

	_, err := ResolveStaff(AssignQuery{
		Service:    service(30),
		Start:      at(monday, "11:45"),
		Selector:   domain.SpecificStaff(1),
		LocationID: testLocationID,
		Staff:      []*domain.Staff{staff},
	})

	assert.ErrorIs(t, err, ErrStaffUnavailable)
}
