package unavailable_days

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	unavailableDays "github.com/m04kA/SMC-SalonBooking/internal/usecase/unavailable_days"
)

const (
	msgInvalidLocationID    = "некорректный ID точки"
	msgInvalidServiceID     = "некорректный ID услуги"
	msgMissingServiceID     = "ID услуги обязателен"
	msgInvalidStaffID       = "некорректный ID мастера, ожидается число или \"any\""
	msgMissingMonth         = "месяц обязателен"
	msgInvalidMonth         = "некорректный формат месяца, ожидается YYYY-MM"
	msgLocationNotFound     = "точка не найдена"
	msgServiceNotFound      = "услуга не найдена"
	msgStaffNotFound        = "мастер не найден"
	msgServiceNotAtLocation = "услуга не оказывается в этой точке"
	msgStaffNotAtLocation   = "мастер не работает в этой точке"
	msgInvalidInput         = "некорректные параметры запроса"
)

type Handler struct {
	useCase UnavailableDaysUseCase
	logger  Logger
}

func NewHandler(useCase UnavailableDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/unavailable-days
// Query params: serviceId (required), month (required, YYYY-MM), staffId (id или "any")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID, err := strconv.ParseInt(mux.Vars(r)["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /locations/{id}/unavailable-days - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	query := r.URL.Query()

	serviceIDStr := query.Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /locations/{id}/unavailable-days - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /locations/{id}/unavailable-days - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	staff, err := domain.ParseStaffSelector(query.Get("staffId"))
	if err != nil {
		h.logger.Warn("GET /locations/{id}/unavailable-days - Invalid staff ID: %q", query.Get("staffId"))
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	monthStr := query.Get("month")
	if monthStr == "" {
		h.logger.Warn("GET /locations/{id}/unavailable-days - Missing month")
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}

	useCaseReq, err := ToUseCaseRequest(locationID, serviceID, staff, monthStr)
	if err != nil {
		h.logger.Warn("GET /locations/{id}/unavailable-days - Invalid month format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, unavailableDays.ErrLocationNotFound):
			h.logger.Warn("GET /locations/{id}/unavailable-days - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, unavailableDays.ErrServiceNotFound):
			h.logger.Warn("GET /locations/{id}/unavailable-days - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, unavailableDays.ErrStaffNotFound):
			h.logger.Warn("GET /locations/{id}/unavailable-days - Staff not found: staff=%s", staff)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, unavailableDays.ErrServiceNotAtLocation):
			h.logger.Warn("GET /locations/{id}/unavailable-days - Service not at location: location_id=%d, service_id=%d",
				locationID, serviceID)
			handlers.RespondBadRequest(w, msgServiceNotAtLocation)

		case errors.Is(err, unavailableDays.ErrStaffNotAtLocation):
			h.logger.Warn("GET /locations/{id}/unavailable-days - Staff not at location: location_id=%d, staff=%s",
				locationID, staff)
			handlers.RespondBadRequest(w, msgStaffNotAtLocation)

		case errors.Is(err, unavailableDays.ErrInvalidInput):
			h.logger.Warn("GET /locations/{id}/unavailable-days - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /locations/{id}/unavailable-days - Failed to scan month: location_id=%d, service_id=%d, error=%v",
				locationID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /locations/{id}/unavailable-days - Days retrieved successfully: location_id=%d, month=%s, count=%d",
		locationID, monthStr, len(result.UnavailableDays))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
