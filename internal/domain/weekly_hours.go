package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

const dayOff = "off"

var ErrInvalidWeeklyHours = errors.New("invalid weekly hours")

var weekdayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// WeekdayName returns the lowercase English name used as a WeeklyHours key.
func WeekdayName(d time.Weekday) string {
	return weekdayNames[d]
}

// TimeRange is a wall-clock range [Start, End) within one day.
type TimeRange struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// DaySchedule is the working window of a single weekday. Breaks are
// sub-ranges of the window during which no appointment may run.
type DaySchedule struct {
	Start  types.TimeString `json:"start"`
	End    types.TimeString `json:"end"`
	Breaks []TimeRange      `json:"breaks,omitempty"`
}

// WeeklyHours maps a weekday name to its schedule. A missing day or a nil
// schedule means the staff member does not work that day.
type WeeklyHours map[string]*DaySchedule

// ScheduleFor returns the schedule of date's weekday in date's location.
func (w WeeklyHours) ScheduleFor(date time.Time) (*DaySchedule, bool) {
	schedule, ok := w[WeekdayName(date.Weekday())]
	if !ok || schedule == nil {
		return nil, false
	}
	return schedule, true
}

// Validate checks day names and that every break lies inside its window.
// A window with start >= end is allowed and treated as a day off.
func (w WeeklyHours) Validate() error {
	for day, schedule := range w {
		if !isWeekdayName(day) {
			return fmt.Errorf("%w: unknown day %q", ErrInvalidWeeklyHours, day)
		}
		if schedule == nil {
			continue
		}
		if err := schedule.Start.Validate(); err != nil {
			return fmt.Errorf("%w: %s start: %v", ErrInvalidWeeklyHours, day, err)
		}
		if err := schedule.End.Validate(); err != nil {
			return fmt.Errorf("%w: %s end: %v", ErrInvalidWeeklyHours, day, err)
		}
		for _, br := range schedule.Breaks {
			if br.Start.Validate() != nil || br.End.Validate() != nil || !br.Start.IsBefore(br.End) {
				return fmt.Errorf("%w: %s break %s-%s", ErrInvalidWeeklyHours, day, br.Start, br.End)
			}
		}
	}
	return nil
}

// UnmarshalJSON accepts {"monday": {"start": "09:00", "end": "17:00"}, "sunday": "off"}.
func (w *WeeklyHours) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWeeklyHours, err)
	}

	hours := make(WeeklyHours, len(raw))
	for day, msg := range raw {
		key := strings.ToLower(day)
		trimmed := bytes.TrimSpace(msg)
		if len(trimmed) > 0 && trimmed[0] == '"' {
			var s string
			if err := json.Unmarshal(trimmed, &s); err != nil || s != dayOff {
				return fmt.Errorf("%w: %s: expected %q or a schedule", ErrInvalidWeeklyHours, day, dayOff)
			}
			hours[key] = nil
			continue
		}
		if string(trimmed) == "null" {
			hours[key] = nil
			continue
		}

		var schedule DaySchedule
		if err := json.Unmarshal(trimmed, &schedule); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidWeeklyHours, day, err)
		}
		hours[key] = &schedule
	}

	if err := hours.Validate(); err != nil {
		return err
	}
	*w = hours
	return nil
}

func (w WeeklyHours) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(w))
	for day, schedule := range w {
		if schedule == nil {
			out[day] = dayOff
			continue
		}
		out[day] = schedule
	}
	return json.Marshal(out)
}

// UnmarshalTOML decodes the same shape from a TOML table.
func (w *WeeklyHours) UnmarshalTOML(data interface{}) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWeeklyHours, err)
	}
	return w.UnmarshalJSON(encoded)
}

// Scan reads a JSONB column.
func (w *WeeklyHours) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*w = WeeklyHours{}
		return nil
	case []byte:
		return w.UnmarshalJSON(v)
	case string:
		return w.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("%w: unsupported column type %T", ErrInvalidWeeklyHours, src)
	}
}

func isWeekdayName(day string) bool {
	for _, name := range weekdayNames {
		if name == day {
			return true
		}
	}
	return false
}
