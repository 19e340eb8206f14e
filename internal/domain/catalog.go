package domain

import (
	"fmt"
	"time"
)

// Location is a salon branch. Wall-clock times and dates of its services,
// staff and bookings are interpreted in Timezone.
type Location struct {
	ID       int64
	Name     string
	Timezone string
}

// Zone resolves the location's time zone, falling back to def when Timezone is empty.
func (l *Location) Zone(def *time.Location) (*time.Location, error) {
	if l.Timezone == "" {
		if def == nil {
			return time.UTC, nil
		}
		return def, nil
	}
	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return nil, fmt.Errorf("location %d: timezone %q: %w", l.ID, l.Timezone, err)
	}
	return loc, nil
}

// Service is a bookable treatment offered at one location.
type Service struct {
	ID              int64
	LocationID      int64
	Name            string
	DurationMinutes int
	Price           float64
}

// Duration returns the appointment length.
func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

// Staff is a person who performs services at one location.
type Staff struct {
	ID          int64
	LocationID  int64
	Name        string
	WeeklyHours WeeklyHours
}
