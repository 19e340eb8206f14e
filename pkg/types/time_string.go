package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const timeLayout = "15:04"

var (
	ErrInvalidTimeString = errors.New("invalid time string format")
)

// TimeString is a wall-clock time of day in zero-padded 24h "HH:MM" form.
type TimeString string

// NewTimeString formats the wall clock of t in t's own location.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates s.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks the strict "HH:MM" shape: two digits, colon, two digits.
func (t TimeString) Validate() error {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return ErrInvalidTimeString
	}
	if _, err := time.Parse(timeLayout, s); err != nil {
		return ErrInvalidTimeString
	}
	return nil
}

// Minutes returns minutes since midnight, or -1 if t is malformed.
func (t TimeString) Minutes() int {
	if t.Validate() != nil {
		return -1
	}
	parsed, _ := time.Parse(timeLayout, string(t))
	return parsed.Hour()*60 + parsed.Minute()
}

func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

func (t TimeString) IsZero() bool {
	return t == ""
}

func (t TimeString) String() string {
	return string(t)
}

// On anchors t on the calendar date of date, in date's location.
func (t TimeString) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, t.Minutes(), 0, 0, date.Location())
}

func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeString, err)
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return fmt.Errorf("%w: %q", err, s)
	}
	*t = parsed
	return nil
}
