package unavailable_days

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	unavailableDays "github.com/m04kA/SMC-SalonBooking/internal/usecase/unavailable_days"
)

// UnavailableDaysResponse HTTP response model
type UnavailableDaysResponse struct {
	LocationID      int64    `json:"locationId"`
	ServiceID       int64    `json:"serviceId"`
	StaffID         string   `json:"staffId"`
	Month           string   `json:"month"` // "2026-11"
	UnavailableDays []string `json:"unavailableDays"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(locationID, serviceID int64, staff domain.StaffSelector, monthStr string) (*unavailableDays.Request, error) {
	month, err := time.Parse(domain.MonthFormat, monthStr)
	if err != nil {
		return nil, err
	}

	return &unavailableDays.Request{
		LocationID: locationID,
		ServiceID:  serviceID,
		Staff:      staff,
		Month:      month,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *unavailableDays.Response) *UnavailableDaysResponse {
	days := resp.UnavailableDays
	if days == nil {
		days = []string{}
	}

	return &UnavailableDaysResponse{
		LocationID:      resp.LocationID,
		ServiceID:       resp.ServiceID,
		StaffID:         resp.Staff.String(),
		Month:           resp.Month.Format(domain.MonthFormat),
		UnavailableDays: days,
	}
}
