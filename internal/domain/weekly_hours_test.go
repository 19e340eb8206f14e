package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyHours_UnmarshalJSON(t *testing.T) {
	raw := `{
		"monday": {"start": "09:00", "end": "17:30", "breaks": [{"start": "12:00", "end": "13:00"}]},
		"Tuesday": {"start": "10:00", "end": "18:00"},
		"sunday": "off"
	}`

	var hours WeeklyHours
	require.NoError(t, json.Unmarshal([]byte(raw), &hours))

	require.Contains(t, hours, "monday")
	assert.Equal(t, "09:00", hours["monday"].Start.String())
	assert.Len(t, hours["monday"].Breaks, 1)
	assert.Contains(t, hours, "tuesday")
	assert.Nil(t, hours["sunday"])
}

func TestWeeklyHours_UnmarshalJSON_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown day":    `{"funday": "off"}`,
		"bad time":       `{"monday": {"start": "9:00", "end": "17:00"}}`,
		"unknown string": `{"monday": "closed"}`,
		"inverted break": `{"monday": {"start": "09:00", "end": "17:00", "breaks": [{"start": "13:00", "end": "12:00"}]}}`,
		"not an object":  `["monday"]`,
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			var hours WeeklyHours
			err := json.Unmarshal([]byte(raw), &hours)
			assert.ErrorIs(t, err, ErrInvalidWeeklyHours)
		})
	}
}

func TestWeeklyHours_MarshalRoundTripKeepsOff(t *testing.T) {
	hours := WeeklyHours{"sunday": nil, "monday": {Start: "09:00", End: "17:00"}}

	data, err := json.Marshal(hours)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"sunday":"off"`)
}

func TestWeeklyHours_ScheduleFor(t *testing.T) {
	hours := WeeklyHours{
		"monday": {Start: "09:00", End: "17:00"},
		"sunday": nil,
	}

	// 2026-11-02 is a Monday.
	monday := time.Date(2026, time.November, 2, 0, 0, 0, 0, time.UTC)
	schedule, ok := hours.ScheduleFor(monday)
	require.True(t, ok)
	assert.Equal(t, "17:00", schedule.End.String())

	_, ok = hours.ScheduleFor(monday.AddDate(0, 0, -1))
	assert.False(t, ok, "sunday is off")

	_, ok = hours.ScheduleFor(monday.AddDate(0, 0, 1))
	assert.False(t, ok, "missing day is off")
}

func TestWeeklyHours_UnmarshalTOML(t *testing.T) {
	var doc struct {
		Hours WeeklyHours `toml:"hours"`
	}
	_, err := toml.Decode(`
[hours]
sunday = "off"
monday = { start = "09:00", end = "18:00" }
`, &doc)
	require.NoError(t, err)

	assert.Nil(t, doc.Hours["sunday"])
	require.NotNil(t, doc.Hours["monday"])
	assert.Equal(t, "18:00", doc.Hours["monday"].End.String())
}

func TestParseStaffSelector(t *testing.T) {
	sel, err := ParseStaffSelector("any")
	require.NoError(t, err)
	assert.True(t, sel.IsAny())

	sel, err = ParseStaffSelector("")
	require.NoError(t, err)
	assert.True(t, sel.IsAny())

	sel, err = ParseStaffSelector("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), sel.StaffID)
	assert.Equal(t, "42", sel.String())

	for _, raw := range []string{"-1", "0", "abc"} {
		_, err = ParseStaffSelector(raw)
		assert.ErrorIs(t, err, ErrInvalidStaffSelector, raw)
	}
}

func TestBooking_Overlaps(t *testing.T) {
	start := time.Date(2026, time.November, 2, 10, 0, 0, 0, time.UTC)
	b := &Booking{StartAt: start, DurationMinutes: 60}

	assert.Equal(t, start.Add(time.Hour), b.End())
	assert.True(t, b.Overlaps(start.Add(30*time.Minute), start.Add(90*time.Minute)))
	assert.False(t, b.Overlaps(start.Add(time.Hour), start.Add(2*time.Hour)), "touching end")
	assert.False(t, b.Overlaps(start.Add(-time.Hour), start), "touching start")
}
