package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	LocationID int64                // ID точки
	ServiceID  int64                // ID услуги
	Staff      domain.StaffSelector // Конкретный мастер или любой
	Date       time.Time            // Дата бронирования (без времени)
	StartTime  types.TimeString     // Время начала (например, "10:00") в часовом поясе точки
	Client     domain.ClientInfo    // Контакты клиента
	Notes      *string              // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	LocationID      int64
	StaffID         int64 // Назначенный мастер
	ServiceID       int64
	StartAt         time.Time // Начало в часовом поясе точки
	EndAt           time.Time // Конец (не включительно)
	DurationMinutes int

	// Денормализованные данные услуги
	ServiceName  string
	ServicePrice float64

	Client    domain.ClientInfo
	Notes     *string
	CreatedAt time.Time
}
