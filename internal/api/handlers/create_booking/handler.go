package create_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

const (
	msgInvalidLocationID    = "некорректный ID точки"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTime          = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidStaffID       = "некорректный ID мастера, ожидается число или \"any\""
	msgLocationNotFound     = "точка не найдена"
	msgServiceNotFound      = "услуга не найдена"
	msgStaffNotFound        = "мастер не найден"
	msgServiceNotAtLocation = "услуга не оказывается в этой точке"
	msgStaffNotAtLocation   = "мастер не работает в этой точке"
	msgInvalidBookingDate   = "некорректная дата бронирования"
	msgTooLateToBook        = "слишком поздно для бронирования этого времени"
	msgStaffUnavailable     = "мастер не работает или занят в выбранное время"
	msgNoStaffAvailable     = "нет свободных мастеров на выбранное время"
	msgConflictAtCommit     = "выбранное время только что заняли, выберите другое"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/locations/{locationId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID, err := strconv.ParseInt(mux.Vars(r)["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /locations/{id}/bookings - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /locations/{id}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /locations/{id}/bookings - %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом мастера, даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(locationID)
	if err != nil {
		h.logger.Warn("POST /locations/{id}/bookings - Failed to parse request: %v", err)
		switch {
		case errors.Is(err, domain.ErrInvalidStaffSelector):
			handlers.RespondBadRequest(w, msgInvalidStaffID)
		case errors.Is(err, types.ErrInvalidTimeString):
			handlers.RespondBadRequest(w, msgInvalidTime)
		default:
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrConflictAtCommit):
			h.logger.Warn("POST /locations/{id}/bookings - Conflict at commit: location_id=%d, staff=%s, date=%s, time=%s",
				locationID, useCaseReq.Staff, req.Date, req.Time)
			handlers.RespondConflict(w, handlers.CodeConflictAtCommit, msgConflictAtCommit)

		case errors.Is(err, createBooking.ErrStaffUnavailable):
			h.logger.Warn("POST /locations/{id}/bookings - Staff unavailable: location_id=%d, staff=%s", locationID, useCaseReq.Staff)
			handlers.RespondConflict(w, handlers.CodeStaffUnavailable, msgStaffUnavailable)

		case errors.Is(err, createBooking.ErrNoStaffAvailable):
			h.logger.Warn("POST /locations/{id}/bookings - No staff available: location_id=%d", locationID)
			handlers.RespondConflict(w, handlers.CodeNoStaffAvailable, msgNoStaffAvailable)

		case errors.Is(err, createBooking.ErrLocationNotFound):
			h.logger.Warn("POST /locations/{id}/bookings - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /locations/{id}/bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrStaffNotFound):
			h.logger.Warn("POST /locations/{id}/bookings - Staff not found: staff=%s", useCaseReq.Staff)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createBooking.ErrServiceNotAtLocation):
			h.logger.Warn("POST /locations/{id}/bookings - Service not at location: location_id=%d, service_id=%d",
				locationID, req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotAtLocation)

		case errors.Is(err, createBooking.ErrStaffNotAtLocation):
			h.logger.Warn("POST /locations/{id}/bookings - Staff not at location: location_id=%d, staff=%s",
				locationID, useCaseReq.Staff)
			handlers.RespondBadRequest(w, msgStaffNotAtLocation)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /locations/{id}/bookings - Invalid booking date: %s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /locations/{id}/bookings - Too late to book: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /locations/{id}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /locations/{id}/bookings - Failed to create booking: location_id=%d, service_id=%d, error=%v",
				locationID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /locations/{id}/bookings - Booking created successfully: booking_id=%d, location_id=%d, staff_id=%d",
		result.ID, locationID, result.StaffID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
