package suggest_times

import "errors"

var (
	// ErrLocationNotFound возвращается, когда точка не найдена
	ErrLocationNotFound = errors.New("suggest_times: location not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("suggest_times: service not found")

	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("suggest_times: staff not found")

	// ErrServiceNotAtLocation возвращается, когда услуга принадлежит другой точке
	ErrServiceNotAtLocation = errors.New("suggest_times: service is not offered at this location")

	// ErrStaffNotAtLocation возвращается, когда мастер работает в другой точке
	ErrStaffNotAtLocation = errors.New("suggest_times: staff does not work at this location")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("suggest_times: invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("suggest_times: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("suggest_times: internal error")
)
