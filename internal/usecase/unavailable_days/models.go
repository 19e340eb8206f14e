package unavailable_days

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request модель запроса занятых дней месяца
type Request struct {
	LocationID int64                // ID точки
	ServiceID  int64                // ID услуги
	Staff      domain.StaffSelector // Конкретный мастер или любой
	Month      time.Time            // Любой момент внутри месяца (учитываются год и месяц)
}

// Response модель ответа с днями без свободного времени
type Response struct {
	LocationID      int64
	ServiceID       int64
	Staff           domain.StaffSelector
	Month           time.Time // Первое число месяца в часовом поясе точки
	UnavailableDays []string  // Даты "YYYY-MM-DD" по возрастанию
}
