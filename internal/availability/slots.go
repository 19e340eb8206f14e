package availability

import (
	"iter"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

const granularity = domain.SlotGranularityMinutes * time.Minute

// Candidates yields start times from window.Start in 15-minute steps while the
// appointment still ends inside the window. Times before notBefore are skipped.
// The sequence is lazy and can be ranged over more than once.
func Candidates(window Window, durationMinutes int, notBefore *time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if durationMinutes <= 0 {
			return
		}
		duration := time.Duration(durationMinutes) * time.Minute

		for c := window.Start; !c.Add(duration).After(window.End); c = c.Add(granularity) {
			if notBefore != nil && c.Before(*notBefore) {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// cutoff returns the earliest bookable start on date given now.
// past is true when date lies entirely before today in date's location.
// For today the cutoff is now rounded up to the next wall-clock slot boundary;
// for future dates it is nil.
func cutoff(date, now time.Time) (notBefore *time.Time, past bool) {
	if now.IsZero() {
		return nil, false
	}
	loc := date.Location()
	local := now.In(loc)

	dy, dm, dd := date.Date()
	ny, nm, nd := local.Date()
	day := time.Date(dy, dm, dd, 0, 0, 0, 0, loc)
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, loc)

	switch {
	case day.Before(today):
		return nil, true
	case day.After(today):
		return nil, false
	}

	minutes := local.Hour()*60 + local.Minute()
	if local.Second() > 0 || local.Nanosecond() > 0 {
		minutes++
	}
	step := domain.SlotGranularityMinutes
	minutes = (minutes + step - 1) / step * step

	rounded := time.Date(ny, nm, nd, 0, minutes, 0, 0, loc)
	return &rounded, false
}

// freeStarts yields the candidates of one staff member on date that fit the
// working window and do not conflict with that staff member's bookings.
func freeStarts(staff *domain.Staff, date time.Time, durationMinutes int, notBefore *time.Time, bookings []*domain.Booking) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		window, ok := WorkingWindow(staff, date)
		if !ok {
			return
		}
		duration := time.Duration(durationMinutes) * time.Minute

		for start := range Candidates(window, durationMinutes, notBefore) {
			end := start.Add(duration)
			if !window.Fits(start, end) || HasConflict(staff.ID, start, end, bookings) {
				continue
			}
			if !yield(start) {
				return
			}
		}
	}
}
