package models

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request модели

// ListByLocationRequest запрос на получение бронирований точки за день
type ListByLocationRequest struct {
	LocationID int64     `json:"locationId"`
	Date       time.Time `json:"date"`
}

// Response модели

// ClientResponse данные клиента
type ClientResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64     `json:"id"`
	LocationID      int64     `json:"locationId"`
	StaffID         int64     `json:"staffId"`
	ServiceID       int64     `json:"serviceId"`
	Date            string    `json:"date"`      // "2026-11-02"
	StartTime       string    `json:"startTime"` // "10:00"
	EndTime         string    `json:"endTime"`   // "10:30"
	StartAt         time.Time `json:"startAt"`
	EndAt           time.Time `json:"endAt"`
	DurationMinutes int       `json:"durationMinutes"`

	// Снимок услуги на момент бронирования
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`

	Client ClientResponse `json:"client"`
	Notes  *string        `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO.
// Время переводится в часовой пояс точки.
func FromDomainBooking(b *domain.Booking, loc *time.Location) *BookingResponse {
	if b == nil {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}

	start := b.StartAt.In(loc)
	end := b.End().In(loc)

	return &BookingResponse{
		ID:              b.ID,
		LocationID:      b.LocationID,
		StaffID:         b.StaffID,
		ServiceID:       b.ServiceID,
		Date:            start.Format(domain.DateFormat),
		StartTime:       start.Format(domain.TimeFormat),
		EndTime:         end.Format(domain.TimeFormat),
		StartAt:         start,
		EndAt:           end,
		DurationMinutes: b.DurationMinutes,
		ServiceName:     b.ServiceName,
		ServicePrice:    b.ServicePrice,
		Client: ClientResponse{
			Name:  b.Client.Name,
			Phone: b.Client.Phone,
			Email: b.Client.Email,
		},
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, loc *time.Location) *BookingListResponse {
	result := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		result.Bookings = append(result.Bookings, *FromDomainBooking(b, loc))
	}
	return result
}
