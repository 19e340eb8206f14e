package suggest_times

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	suggestTimes "github.com/m04kA/SMC-SalonBooking/internal/usecase/suggest_times"
)

// SuggestedTimesResponse HTTP response model
type SuggestedTimesResponse struct {
	LocationID int64    `json:"locationId"`
	ServiceID  int64    `json:"serviceId"`
	StaffID    string   `json:"staffId"` // id мастера или "any"
	Date       string   `json:"date"`
	Times      []string `json:"times"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(locationID, serviceID int64, staff domain.StaffSelector, dateStr string) (*suggestTimes.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &suggestTimes.Request{
		LocationID: locationID,
		ServiceID:  serviceID,
		Staff:      staff,
		Date:       date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *suggestTimes.Response) *SuggestedTimesResponse {
	times := make([]string, 0, len(resp.Times))
	for _, t := range resp.Times {
		times = append(times, t.String())
	}

	staffID := domain.AnyStaffToken
	if !resp.Staff.IsAny() {
		staffID = strconv.FormatInt(resp.Staff.StaffID, 10)
	}

	return &SuggestedTimesResponse{
		LocationID: resp.LocationID,
		ServiceID:  resp.ServiceID,
		StaffID:    staffID,
		Date:       resp.Date.Format(domain.DateFormat),
		Times:      times,
	}
}
