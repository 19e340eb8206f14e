package unavailable_days

import "errors"

var (
	// ErrLocationNotFound возвращается, когда точка не найдена
	ErrLocationNotFound = errors.New("unavailable_days: location not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("unavailable_days: service not found")

	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("unavailable_days: staff not found")

	// ErrServiceNotAtLocation возвращается, когда услуга принадлежит другой точке
	ErrServiceNotAtLocation = errors.New("unavailable_days: service is not offered at this location")

	// ErrStaffNotAtLocation возвращается, когда мастер работает в другой точке
	ErrStaffNotAtLocation = errors.New("unavailable_days: staff does not work at this location")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("unavailable_days: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("unavailable_days: internal error")
)
