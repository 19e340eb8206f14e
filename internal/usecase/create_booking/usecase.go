package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/availability"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/locker"
	bookingRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonBooking/pkg/pgerr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	catalogRepo  CatalogRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	locker       Locker
	defaultZone  *time.Location
	timeProvider TimeProvider
	conflicts    ConflictRecorder
	logger       Logger
}

// Этапы, на которых бронирование отклоняется при сохранении
const (
	stageRecheck       = "recheck"
	stageConstraint    = "constraint"
	stageSerialization = "serialization"
)

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	locker Locker,
	defaultZone *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:  catalogRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		locker:       locker,
		defaultZone:  defaultZone,
		timeProvider: &RealTimeProvider{},
		conflicts:    nopConflictRecorder{},
		logger:       logger,
	}
}

// WithConflictRecorder подключает метрики конфликтов
func (uc *UseCase) WithConflictRecorder(recorder ConflictRecorder) *UseCase {
	if recorder != nil {
		uc.conflicts = recorder
	}
	return uc
}

// Execute выполняет use case создания бронирования.
//
// Предварительная проверка идёт по снимку без блокировок. Затем под блокировкой
// мастера в сериализуемой транзакции бронирования мастера перечитываются
// и проверяются повторно, а ограничение bookings_no_overlap в БД остаётся
// последней защитой. Если время заняли между проверкой и вставкой, возвращается
// ErrConflictAtCommit; для "любого мастера" сначала пробуем следующего.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: location=%d, service=%d, staff=%s, date=%s, time=%s",
		req.LocationID, req.ServiceID, req.Staff, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем точку и её часовой пояс
	location, err := uc.catalogRepo.GetLocation(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrLocationNotFound) {
			uc.logger.Warn("CreateBooking: location id=%d not found", req.LocationID)
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("CreateBooking: failed to get location id=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
	}

	zone, err := location.Zone(uc.defaultZone)
	if err != nil {
		uc.logger.Error("CreateBooking: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Проверяем дату и время начала
	day := localDate(req.Date, zone)
	if isDateInPast(day, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", day.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: %s is in the past", ErrInvalidDate, day.Format(domain.DateFormat))
	}

	start := req.StartTime.On(day)
	if start.Before(now) {
		uc.logger.Warn("CreateBooking: start %s has already passed", start.Format(time.RFC3339))
		return nil, ErrTooLateToBook
	}

	// 5. Получаем услугу
	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.LocationID != req.LocationID {
		uc.logger.Warn("CreateBooking: service id=%d is not offered at location id=%d", req.ServiceID, req.LocationID)
		return nil, ErrServiceNotAtLocation
	}
	end := start.Add(service.Duration())

	// 6. Получаем кандидатов: выбранного мастера или всех мастеров точки по возрастанию ID
	candidates, err := uc.loadStaff(ctx, req)
	if err != nil {
		return nil, err
	}

	// 7. Снимок бронирований кандидатов, пересекающихся с интервалом
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.StaffBookingsFilter(candidates, start, end))
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Назначаем мастера и сохраняем
	for {
		staff, err := availability.ResolveStaff(availability.AssignQuery{
			Service:    service,
			Start:      start,
			Selector:   req.Staff,
			LocationID: req.LocationID,
			Staff:      candidates,
			Bookings:   bookings,
		})
		switch {
		case errors.Is(err, availability.ErrStaffUnavailable):
			uc.logger.Warn("CreateBooking: staff id=%d is not available at %s", req.Staff.StaffID, start.Format(time.RFC3339))
			return nil, ErrStaffUnavailable
		case errors.Is(err, availability.ErrNoStaffAvailable):
			uc.logger.Warn("CreateBooking: no staff available at %s", start.Format(time.RFC3339))
			return nil, ErrNoStaffAvailable
		case err != nil:
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}

		uc.logger.Debug("CreateBooking: staff id=%d chosen from %d candidates", staff.ID, len(candidates))

		created, err := uc.commit(ctx, req, service, staff, start)
		if errors.Is(err, ErrConflictAtCommit) && req.Staff.IsAny() {
			uc.logger.Warn("CreateBooking: staff id=%d was taken concurrently, trying next staff", staff.ID)
			candidates = withoutStaff(candidates, staff.ID)
			continue
		}
		if err != nil {
			return nil, err
		}

		uc.logger.Info("CreateBooking: successfully created booking id=%d, staff=%d", created.ID, created.StaffID)
		return toResponse(created, zone), nil
	}
}

// commit повторно проверяет интервал мастера и сохраняет бронирование
func (uc *UseCase) commit(
	ctx context.Context,
	req *Request,
	service *domain.Service,
	staff *domain.Staff,
	start time.Time,
) (*domain.Booking, error) {
	end := start.Add(service.Duration())

	unlock, err := uc.locker.Lock(ctx, locker.StaffKey(staff.ID))
	if err != nil {
		uc.logger.Error("CreateBooking: failed to lock staff id=%d: %v", staff.ID, err)
		return nil, fmt.Errorf("%w: failed to lock staff: %v", ErrInternal, err)
	}
	defer unlock()

	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Бронирования мастера читаются с FOR UPDATE
		current, err := uc.bookingRepo.GetWithFilter(txCtx, domain.BookingsFilter{
			StaffID: &staff.ID,
			From:    &start,
			To:      &end,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to re-read bookings: %w", ErrInternal, err)
		}

		if availability.HasConflict(staff.ID, start, end, current) {
			uc.conflicts.RecordBookingConflict(stageRecheck)
			return ErrConflictAtCommit
		}

		// Денормализация данных услуги
		booking := &domain.Booking{
			LocationID:      req.LocationID,
			StaffID:         staff.ID,
			ServiceID:       service.ID,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
			DurationMinutes: service.DurationMinutes,
			StartAt:         start,
			Client: domain.ClientInfo{
				Name:  strings.TrimSpace(req.Client.Name),
				Phone: strings.TrimSpace(req.Client.Phone),
				Email: strings.TrimSpace(req.Client.Email),
			},
			Notes: req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				uc.conflicts.RecordBookingConflict(stageConstraint)
				return fmt.Errorf("%w: %v", ErrConflictAtCommit, err)
			}
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	switch {
	case err == nil:
		return result, nil
	case errors.Is(err, ErrConflictAtCommit):
		uc.logger.Warn("CreateBooking: conflict at commit for staff id=%d at %s", staff.ID, start.Format(time.RFC3339))
		return nil, ErrConflictAtCommit
	case pgerr.IsSerializationFailure(err):
		uc.conflicts.RecordBookingConflict(stageSerialization)
		uc.logger.Warn("CreateBooking: serialization failure for staff id=%d: %v", staff.ID, err)
		return nil, ErrConflictAtCommit
	case errors.Is(err, ErrInternal):
		uc.logger.Error("CreateBooking: %v", err)
		return nil, err
	default:
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}
}

// loadStaff возвращает выбранного мастера или всех мастеров точки
func (uc *UseCase) loadStaff(ctx context.Context, req *Request) ([]*domain.Staff, error) {
	if req.Staff.IsAny() {
		staff, err := uc.catalogRepo.ListStaffByLocation(ctx, req.LocationID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list staff of location id=%d: %v", req.LocationID, err)
			return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
		}
		return staff, nil
	}

	staff, err := uc.catalogRepo.GetStaff(ctx, req.Staff.StaffID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrStaffNotFound) {
			uc.logger.Warn("CreateBooking: staff id=%d not found", req.Staff.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateBooking: failed to get staff id=%d: %v", req.Staff.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	if staff.LocationID != req.LocationID {
		uc.logger.Warn("CreateBooking: staff id=%d does not work at location id=%d", staff.ID, req.LocationID)
		return nil, ErrStaffNotAtLocation
	}

	return []*domain.Staff{staff}, nil
}

func toResponse(b *domain.Booking, zone *time.Location) *Response {
	return &Response{
		ID:              b.ID,
		LocationID:      b.LocationID,
		StaffID:         b.StaffID,
		ServiceID:       b.ServiceID,
		StartAt:         b.StartAt.In(zone),
		EndAt:           b.End().In(zone),
		DurationMinutes: b.DurationMinutes,
		ServiceName:     b.ServiceName,
		ServicePrice:    b.ServicePrice,
		Client:          b.Client,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
	}
}
