package availability

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// MonthQuery asks which days of a month have no bookable start time.
// Month is any instant inside the month, in the location's zone.
type MonthQuery struct {
	Service    *domain.Service
	Month      time.Time
	Selector   domain.StaffSelector
	LocationID int64
	Staff      []*domain.Staff
	Bookings   []*domain.Booking
	Now        time.Time
}

// Index groups bookings by local day and staff member.
type Index map[string]map[int64][]*domain.Booking

// NewIndex files every booking under each local day in loc that its interval touches.
func NewIndex(bookings []*domain.Booking, loc *time.Location) Index {
	idx := make(Index)
	for _, b := range bookings {
		if b == nil {
			continue
		}
		first := startOfDay(b.StartAt.In(loc))
		last := startOfDay(b.End().Add(-time.Nanosecond).In(loc))

		for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
			key := day.Format(domain.DateFormat)
			if idx[key] == nil {
				idx[key] = make(map[int64][]*domain.Booking)
			}
			idx[key][b.StaffID] = append(idx[key][b.StaffID], b)
		}
	}
	return idx
}

// For returns the bookings of staffID touching day.
func (idx Index) For(day time.Time, staffID int64) []*domain.Booking {
	return idx[day.Format(domain.DateFormat)][staffID]
}

// UnavailableDays returns the "YYYY-MM-DD" dates of the month, ascending, on
// which no eligible staff member can start the service. Days before today count
// as unavailable.
func UnavailableDays(q MonthQuery) []string {
	loc := q.Month.Location()
	y, m, _ := q.Month.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, loc)

	eligible := eligibleStaff(q.Staff, q.Selector, q.LocationID)
	idx := NewIndex(q.Bookings, loc)

	days := []string{}
	for day := first; day.Month() == m; day = day.AddDate(0, 0, 1) {
		if !dayHasFreeStart(q.Service, day, eligible, idx, q.Now) {
			days = append(days, day.Format(domain.DateFormat))
		}
	}
	return days
}

func dayHasFreeStart(service *domain.Service, day time.Time, staff []*domain.Staff, idx Index, now time.Time) bool {
	if service == nil || service.DurationMinutes <= 0 {
		return false
	}
	notBefore, past := cutoff(day, now)
	if past {
		return false
	}

	for _, s := range staff {
		for range freeStarts(s, day, service.DurationMinutes, notBefore, idx.For(day, s.ID)) {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
