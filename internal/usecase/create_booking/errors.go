package create_booking

import "errors"

var (
	// ErrLocationNotFound возвращается, когда точка не найдена
	ErrLocationNotFound = errors.New("create_booking: location not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("create_booking: staff not found")

	// ErrServiceNotAtLocation возвращается, когда услуга принадлежит другой точке
	ErrServiceNotAtLocation = errors.New("create_booking: service is not offered at this location")

	// ErrStaffNotAtLocation возвращается, когда мастер работает в другой точке
	ErrStaffNotAtLocation = errors.New("create_booking: staff does not work at this location")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrTooLateToBook возвращается, когда время начала уже прошло
	ErrTooLateToBook = errors.New("create_booking: too late to book this time")

	// ErrStaffUnavailable возвращается, когда выбранный мастер не работает или занят в это время
	ErrStaffUnavailable = errors.New("create_booking: staff is not available at this time")

	// ErrNoStaffAvailable возвращается, когда ни один мастер точки не может принять запись
	ErrNoStaffAvailable = errors.New("create_booking: no staff available at this time")

	// ErrConflictAtCommit возвращается, когда время заняли параллельным запросом
	// между проверкой и сохранением
	ErrConflictAtCommit = errors.New("create_booking: time was taken by another booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
