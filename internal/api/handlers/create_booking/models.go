package create_booking

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// StaffRef значение staffId: число или строка "any"
type StaffRef string

// UnmarshalJSON принимает как 42, так и "42" или "any"
func (s *StaffRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = StaffRef(str)
		return nil
	}

	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	*s = StaffRef(strconv.FormatInt(id, 10))
	return nil
}

// ClientRequest контакты клиента
type ClientRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Phone string `json:"phone" validate:"omitempty,max=32"`
	Email string `json:"email" validate:"omitempty,email"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID int64         `json:"serviceId" validate:"required,gt=0"`
	StaffID   StaffRef      `json:"staffId"`                                      // id мастера или "any"
	Date      string        `json:"date" validate:"required,datetime=2006-01-02"` // "2026-11-02"
	Time      string        `json:"time" validate:"required,len=5"`               // "10:00"
	Client    ClientRequest `json:"client" validate:"required"`
	Notes     *string       `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64          `json:"id"`
	LocationID      int64          `json:"locationId"`
	StaffID         int64          `json:"staffId"`
	ServiceID       int64          `json:"serviceId"`
	Date            string         `json:"date"`
	StartTime       string         `json:"startTime"`
	EndTime         string         `json:"endTime"`
	DurationMinutes int            `json:"durationMinutes"`
	ServiceName     string         `json:"serviceName"`
	ServicePrice    float64        `json:"servicePrice"`
	Client          ClientResponse `json:"client"`
	Notes           *string        `json:"notes,omitempty"`
	CreatedAt       string         `json:"createdAt"`
}

// ClientResponse контакты клиента в ответе
type ClientResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(locationID int64) (*createBooking.Request, error) {
	staff, err := domain.ParseStaffSelector(string(r.StaffID))
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		LocationID: locationID,
		ServiceID:  r.ServiceID,
		Staff:      staff,
		Date:       date,
		StartTime:  startTime,
		Client: domain.ClientInfo{
			Name:  r.Client.Name,
			Phone: r.Client.Phone,
			Email: r.Client.Email,
		},
		Notes: r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		LocationID:      resp.LocationID,
		StaffID:         resp.StaffID,
		ServiceID:       resp.ServiceID,
		Date:            resp.StartAt.Format(domain.DateFormat),
		StartTime:       resp.StartAt.Format(domain.TimeFormat),
		EndTime:         resp.EndAt.Format(domain.TimeFormat),
		DurationMinutes: resp.DurationMinutes,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		Client: ClientResponse{
			Name:  resp.Client.Name,
			Phone: resp.Client.Phone,
			Email: resp.Client.Email,
		},
		Notes:     resp.Notes,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
