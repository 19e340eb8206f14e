package domain

import (
	"time"
)

// ClientInfo is the contact data captured with a booking.
type ClientInfo struct {
	Name  string
	Phone string
	Email string
}

// Booking is a committed appointment of one staff member.
// Service fields are a snapshot taken when the booking was created,
// so later catalog edits do not move existing appointments.
type Booking struct {
	ID         int64
	LocationID int64
	StaffID    int64
	ServiceID  int64

	// Denormalized service snapshot
	ServiceName     string
	ServicePrice    float64
	DurationMinutes int

	StartAt time.Time
	Client  ClientInfo
	Notes   *string

	CreatedAt time.Time
}

// End returns the exclusive end of the occupied interval.
func (b *Booking) End() time.Time {
	return b.StartAt.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// Overlaps reports whether [start, end) intersects the booking interval.
// Touching endpoints do not overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return start.Before(b.End()) && end.After(b.StartAt)
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	LocationID *int64     // Фильтр по точке (опционально)
	StaffID    *int64     // Фильтр по мастеру (опционально)
	StaffIDs   []int64    // Фильтр по набору мастеров, пустой набор ничего не находит (опционально)
	From       *time.Time // Бронирования, заканчивающиеся после From
	To         *time.Time // Бронирования, начинающиеся до To
}

// StaffBookingsFilter выбирает бронирования мастеров за период [from, to)
// независимо от точки, в которой они записаны
func StaffBookingsFilter(staff []*Staff, from, to time.Time) BookingsFilter {
	ids := make([]int64, 0, len(staff))
	for _, s := range staff {
		if s != nil {
			ids = append(ids, s.ID)
		}
	}
	return BookingsFilter{StaffIDs: ids, From: &from, To: &to}
}
