// Package availability computes bookable start times and resolves which staff
// member takes an appointment. It is pure: callers pass a snapshot of staff and
// bookings and get deterministic results back.
package availability

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether [start, end) intersects the interval.
func (i Interval) Overlaps(start, end time.Time) bool {
	return overlaps(start, end, i.Start, i.End)
}

// Window is a staff member's working time on one date.
type Window struct {
	Start  time.Time
	End    time.Time
	Breaks []Interval
}

// Fits reports whether [start, end) lies inside the window and clear of every break.
func (w Window) Fits(start, end time.Time) bool {
	if start.Before(w.Start) || end.After(w.End) || !start.Before(end) {
		return false
	}
	for _, br := range w.Breaks {
		if br.Overlaps(start, end) {
			return false
		}
	}
	return true
}

// WorkingWindow anchors the staff member's schedule for date's weekday on that
// date, in date's location. ok is false on days off and for empty windows.
func WorkingWindow(staff *domain.Staff, date time.Time) (Window, bool) {
	if staff == nil {
		return Window{}, false
	}
	schedule, ok := staff.WeeklyHours.ScheduleFor(date)
	if !ok {
		return Window{}, false
	}

	start := schedule.Start.On(date)
	end := schedule.End.On(date)
	if !start.Before(end) {
		return Window{}, false
	}

	window := Window{Start: start, End: end}
	for _, br := range schedule.Breaks {
		bs, be := br.Start.On(date), br.End.On(date)
		if bs.Before(be) {
			window.Breaks = append(window.Breaks, Interval{Start: bs, End: be})
		}
	}
	return window, true
}

func overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}
