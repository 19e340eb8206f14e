package availability

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

const testLocationID int64 = 1

// 2026-11-02 is a Monday.
var monday = time.Date(2026, time.November, 2, 0, 0, 0, 0, time.UTC)

func at(day time.Time, hhmm string) time.Time {
	return types.TimeString(hhmm).On(day)
}

func staffMember(id int64, hours domain.WeeklyHours) *domain.Staff {
	return &domain.Staff{ID: id, LocationID: testLocationID, Name: "staff", WeeklyHours: hours}
}

func weekdays(start, end types.TimeString, breaks ...domain.TimeRange) domain.WeeklyHours {
	hours := domain.WeeklyHours{"sunday": nil}
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"} {
		hours[day] = &domain.DaySchedule{Start: start, End: end, Breaks: breaks}
	}
	return hours
}

func everyDay(start, end types.TimeString) domain.WeeklyHours {
	hours := weekdays(start, end)
	hours["sunday"] = &domain.DaySchedule{Start: start, End: end}
	return hours
}

func service(minutes int) *domain.Service {
	return &domain.Service{ID: 10, LocationID: testLocationID, Name: "cut", DurationMinutes: minutes, Price: 30}
}

func booking(staffID int64, start time.Time, minutes int) *domain.Booking {
	return &domain.Booking{StaffID: staffID, LocationID: testLocationID, StartAt: start, DurationMinutes: minutes}
}

func timeStrings(values ...string) []types.TimeString {
	out := make([]types.TimeString, len(values))
	for i, v := range values {
		out[i] = types.TimeString(v)
	}
	return out
}
