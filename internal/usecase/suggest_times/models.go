package suggest_times

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Request модель запроса свободного времени на день
type Request struct {
	LocationID int64                // ID точки
	ServiceID  int64                // ID услуги
	Staff      domain.StaffSelector // Конкретный мастер или любой
	Date       time.Time            // Дата (учитывается только календарный день)
}

// Response модель ответа со свободным временем
type Response struct {
	LocationID int64
	ServiceID  int64
	Staff      domain.StaffSelector
	Date       time.Time          // Дата в часовом поясе точки
	Times      []types.TimeString // Время начала по возрастанию, "HH:MM"
}
