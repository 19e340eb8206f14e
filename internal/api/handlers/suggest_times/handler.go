package suggest_times

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	suggestTimes "github.com/m04kA/SMC-SalonBooking/internal/usecase/suggest_times"
)

const (
	msgInvalidLocationID    = "некорректный ID точки"
	msgInvalidServiceID     = "некорректный ID услуги"
	msgMissingServiceID     = "ID услуги обязателен"
	msgInvalidStaffID       = "некорректный ID мастера, ожидается число или \"any\""
	msgMissingDate          = "дата обязательна"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast           = "дата в прошлом"
	msgLocationNotFound     = "точка не найдена"
	msgServiceNotFound      = "услуга не найдена"
	msgStaffNotFound        = "мастер не найден"
	msgServiceNotAtLocation = "услуга не оказывается в этой точке"
	msgStaffNotAtLocation   = "мастер не работает в этой точке"
	msgInvalidInput         = "некорректные параметры запроса"
)

type Handler struct {
	useCase SuggestTimesUseCase
	logger  Logger
}

func NewHandler(useCase SuggestTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/suggested-times
// Query params: serviceId (required), date (required, YYYY-MM-DD), staffId (id или "any", по умолчанию "any")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем locationId из URL
	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /locations/{id}/suggested-times - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	query := r.URL.Query()

	// Извлекаем serviceId из query параметров
	serviceIDStr := query.Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /locations/{id}/suggested-times - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /locations/{id}/suggested-times - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	staff, err := domain.ParseStaffSelector(query.Get("staffId"))
	if err != nil {
		h.logger.Warn("GET /locations/{id}/suggested-times - Invalid staff ID: %q", query.Get("staffId"))
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /locations/{id}/suggested-times - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(locationID, serviceID, staff, dateStr)
	if err != nil {
		h.logger.Warn("GET /locations/{id}/suggested-times - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, suggestTimes.ErrLocationNotFound):
			h.logger.Warn("GET /locations/{id}/suggested-times - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, suggestTimes.ErrServiceNotFound):
			h.logger.Warn("GET /locations/{id}/suggested-times - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, suggestTimes.ErrStaffNotFound):
			h.logger.Warn("GET /locations/{id}/suggested-times - Staff not found: staff=%s", staff)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, suggestTimes.ErrServiceNotAtLocation):
			h.logger.Warn("GET /locations/{id}/suggested-times - Service not at location: location_id=%d, service_id=%d",
				locationID, serviceID)
			handlers.RespondBadRequest(w, msgServiceNotAtLocation)

		case errors.Is(err, suggestTimes.ErrStaffNotAtLocation):
			h.logger.Warn("GET /locations/{id}/suggested-times - Staff not at location: location_id=%d, staff=%s",
				locationID, staff)
			handlers.RespondBadRequest(w, msgStaffNotAtLocation)

		case errors.Is(err, suggestTimes.ErrInvalidDate):
			h.logger.Warn("GET /locations/{id}/suggested-times - Date in the past: %s", dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, suggestTimes.ErrInvalidInput):
			h.logger.Warn("GET /locations/{id}/suggested-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /locations/{id}/suggested-times - Failed to suggest times: location_id=%d, service_id=%d, error=%v",
				locationID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /locations/{id}/suggested-times - Times retrieved successfully: location_id=%d, service_id=%d, staff=%s, count=%d",
		locationID, serviceID, staff, len(result.Times))
	handlers.RespondJSON(w, http.StatusOK, response)
}
