package unavailable_days

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Staff.StaffID < 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.Month.IsZero() {
		return fmt.Errorf("%w: month is required", ErrInvalidInput)
	}

	return nil
}

// monthStart возвращает первое число месяца в часовом поясе точки
func monthStart(month time.Time, loc *time.Location) time.Time {
	y, m, _ := month.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, loc)
}
