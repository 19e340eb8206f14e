package availability

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var (
	ErrStaffUnavailable = errors.New("availability: staff member is not available at the requested time")
	ErrNoStaffAvailable = errors.New("availability: no staff member is available at the requested time")
)

// AssignQuery asks who can take the service starting at Start.
// Start carries the location's zone.
type AssignQuery struct {
	Service    *domain.Service
	Start      time.Time
	Selector   domain.StaffSelector
	LocationID int64
	Staff      []*domain.Staff
	Bookings   []*domain.Booking
}

// ResolveStaff picks the staff member for a booking. An explicit selector
// yields that staff member or ErrStaffUnavailable. ANY walks Staff in the given
// order and returns the first one who can take it, or ErrNoStaffAvailable.
func ResolveStaff(q AssignQuery) (*domain.Staff, error) {
	notFree := ErrNoStaffAvailable
	if !q.Selector.IsAny() {
		notFree = ErrStaffUnavailable
	}
	if q.Service == nil || q.Service.DurationMinutes <= 0 {
		return nil, notFree
	}

	end := q.Start.Add(q.Service.Duration())
	for _, staff := range eligibleStaff(q.Staff, q.Selector, q.LocationID) {
		if CanTake(staff, q.Start, end, q.Bookings) {
			return staff, nil
		}
	}
	return nil, notFree
}

// CanTake reports whether staff works through [start, end) and has no booking in it.
func CanTake(staff *domain.Staff, start, end time.Time, bookings []*domain.Booking) bool {
	window, ok := WorkingWindow(staff, start)
	if !ok || !window.Fits(start, end) {
		return false
	}
	return !HasConflict(staff.ID, start, end, bookings)
}
