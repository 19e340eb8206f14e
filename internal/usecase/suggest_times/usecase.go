package suggest_times

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/availability"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
)

// UseCase use case подбора свободного времени на день
type UseCase struct {
	catalogRepo  CatalogRepository
	bookingRepo  BookingRepository
	defaultZone  *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// defaultZone используется для точек без явного часового пояса.
func NewUseCase(
	catalogRepo CatalogRepository,
	bookingRepo BookingRepository,
	defaultZone *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:  catalogRepo,
		bookingRepo:  bookingRepo,
		defaultZone:  defaultZone,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case подбора свободного времени
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SuggestTimes: location=%d, service=%d, staff=%s, date=%s",
		req.LocationID, req.ServiceID, req.Staff, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SuggestTimes: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем точку и её часовой пояс
	location, err := uc.catalogRepo.GetLocation(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrLocationNotFound) {
			uc.logger.Warn("SuggestTimes: location id=%d not found", req.LocationID)
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("SuggestTimes: failed to get location id=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
	}

	zone, err := location.Zone(uc.defaultZone)
	if err != nil {
		uc.logger.Error("SuggestTimes: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Дата в часовом поясе точки, прошлые дни не принимаем
	day := localDate(req.Date, zone)
	if isDateInPast(day, now) {
		uc.logger.Warn("SuggestTimes: date %s is in the past", day.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: %s is in the past", ErrInvalidDate, day.Format(domain.DateFormat))
	}

	// 5. Получаем услугу
	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("SuggestTimes: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("SuggestTimes: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.LocationID != req.LocationID {
		uc.logger.Warn("SuggestTimes: service id=%d is not offered at location id=%d", req.ServiceID, req.LocationID)
		return nil, ErrServiceNotAtLocation
	}

	// 6. Получаем мастеров
	staff, err := uc.loadStaff(ctx, req)
	if err != nil {
		return nil, err
	}

	// 7. Получаем бронирования мастеров, пересекающиеся с днём
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.StaffBookingsFilter(staff, day, day.AddDate(0, 0, 1)))
	if err != nil {
		uc.logger.Error("SuggestTimes: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Считаем свободное время
	times := availability.SuggestTimes(availability.DayQuery{
		Service:    service,
		Date:       day,
		Selector:   req.Staff,
		LocationID: req.LocationID,
		Staff:      staff,
		Bookings:   bookings,
		Now:        now,
	})

	uc.logger.Info("SuggestTimes: found %d free start times, %d staff, %d bookings",
		len(times), len(staff), len(bookings))

	return &Response{
		LocationID: req.LocationID,
		ServiceID:  req.ServiceID,
		Staff:      req.Staff,
		Date:       day,
		Times:      times,
	}, nil
}

// loadStaff возвращает выбранного мастера или всех мастеров точки
func (uc *UseCase) loadStaff(ctx context.Context, req *Request) ([]*domain.Staff, error) {
	if req.Staff.IsAny() {
		staff, err := uc.catalogRepo.ListStaffByLocation(ctx, req.LocationID)
		if err != nil {
			uc.logger.Error("SuggestTimes: failed to list staff of location id=%d: %v", req.LocationID, err)
			return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
		}
		return staff, nil
	}

	staff, err := uc.catalogRepo.GetStaff(ctx, req.Staff.StaffID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrStaffNotFound) {
			uc.logger.Warn("SuggestTimes: staff id=%d not found", req.Staff.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("SuggestTimes: failed to get staff id=%d: %v", req.Staff.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	if staff.LocationID != req.LocationID {
		uc.logger.Warn("SuggestTimes: staff id=%d does not work at location id=%d", staff.ID, req.LocationID)
		return nil, ErrStaffNotAtLocation
	}

	return []*domain.Staff{staff}, nil
}
