package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	defaultZone *time.Location
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	defaultZone *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		defaultZone: defaultZone,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	zone, err := s.locationZone(ctx, booking.LocationID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking, zone), nil
}

// ListByLocation получает бронирования точки, пересекающиеся с календарным днем
// в часовом поясе точки. Бронирования отсортированы по времени начала.
func (s *Service) ListByLocation(ctx context.Context, req *models.ListByLocationRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListByLocation: fetching bookings for location=%d, date=%s",
		req.LocationID, req.Date.Format(domain.DateFormat))

	if req.LocationID <= 0 {
		return nil, fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	zone, err := s.locationZone(ctx, req.LocationID)
	if err != nil {
		return nil, err
	}

	y, m, d := req.Date.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, zone)
	to := from.AddDate(0, 0, 1)

	bookings, err := s.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		LocationID: &req.LocationID,
		From:       &from,
		To:         &to,
	})
	if err != nil {
		s.logger.Error("ListByLocation: repository error for location=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: ListByLocation - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByLocation: successfully fetched %d bookings for location=%d", len(bookings), req.LocationID)
	return models.FromDomainBookingList(bookings, zone), nil
}

// Delete удаляет бронирование (действие администратора).
// Интервал мастера сразу становится свободным.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

// locationZone возвращает часовой пояс точки
func (s *Service) locationZone(ctx context.Context, locationID int64) (*time.Location, error) {
	location, err := s.catalogRepo.GetLocation(ctx, locationID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrLocationNotFound) {
			s.logger.Warn("locationZone: location id=%d not found", locationID)
			return nil, ErrLocationNotFound
		}
		s.logger.Error("locationZone: failed to get location id=%d: %v", locationID, err)
		return nil, fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
	}

	zone, err := location.Zone(s.defaultZone)
	if err != nil {
		s.logger.Error("locationZone: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return zone, nil
}
