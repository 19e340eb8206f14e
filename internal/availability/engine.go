package availability

import (
	"slices"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// DayQuery asks for bookable start times on one date.
// Date carries the location's zone; only its calendar day is used.
type DayQuery struct {
	Service    *domain.Service
	Date       time.Time
	Selector   domain.StaffSelector
	LocationID int64
	Staff      []*domain.Staff
	Bookings   []*domain.Booking
	Now        time.Time
}

// SuggestTimes returns ascending "HH:MM" start times at which the service can
// begin. With an ANY selector it returns the union over all eligible staff.
// The result is empty, never nil, when nothing is free.
func SuggestTimes(q DayQuery) []types.TimeString {
	times := []types.TimeString{}
	if q.Service == nil || q.Service.DurationMinutes <= 0 {
		return times
	}

	notBefore, past := cutoff(q.Date, q.Now)
	if past {
		return times
	}

	eligible := eligibleStaff(q.Staff, q.Selector, q.LocationID)
	seen := make(map[types.TimeString]struct{})

	for _, staff := range eligible {
		for start := range freeStarts(staff, q.Date, q.Service.DurationMinutes, notBefore, q.Bookings) {
			ts := types.NewTimeString(start)
			if _, dup := seen[ts]; dup {
				continue
			}
			seen[ts] = struct{}{}
			times = append(times, ts)
		}
	}

	if len(eligible) > 1 {
		slices.Sort(times)
	}
	return times
}

// eligibleStaff keeps staff of the location that match the selector, preserving order.
func eligibleStaff(staff []*domain.Staff, selector domain.StaffSelector, locationID int64) []*domain.Staff {
	out := make([]*domain.Staff, 0, len(staff))
	for _, s := range staff {
		if s == nil || s.LocationID != locationID || !selector.Matches(s) {
			continue
		}
		out = append(out, s)
	}
	return out
}
