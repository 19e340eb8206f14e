package availability

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// HasConflict reports whether [start, end) overlaps any booking of staffID.
// Bookings of other staff members are ignored, so an unfiltered list is fine.
func HasConflict(staffID int64, start, end time.Time, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if b == nil || b.StaffID != staffID {
			continue
		}
		if overlaps(start, end, b.StartAt, b.End()) {
			return true
		}
	}
	return false
}
