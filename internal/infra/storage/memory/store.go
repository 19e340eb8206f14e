// Package memory is an in-process implementation of the catalog and booking
// repositories. It enforces the same per-staff overlap rule as the database
// exclusion constraint.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
)

type Store struct {
	mu sync.RWMutex

	locations map[int64]*domain.Location
	services  map[int64]*domain.Service
	staff     map[int64]*domain.Staff
	bookings  map[int64]*domain.Booking
	nextID    int64

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		locations: make(map[int64]*domain.Location),
		services:  make(map[int64]*domain.Service),
		staff:     make(map[int64]*domain.Staff),
		bookings:  make(map[int64]*domain.Booking),
		now:       time.Now,
	}
}

func (s *Store) PutLocation(l *domain.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *l
	s.locations[l.ID] = &cp
}

func (s *Store) PutService(svc *domain.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *svc
	s.services[svc.ID] = &cp
}

func (s *Store) PutStaff(st *domain.Staff) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *st
	s.staff[st.ID] = &cp
}

func (s *Store) GetLocation(_ context.Context, id int64) (*domain.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.locations[id]
	if !ok {
		return nil, catalog.ErrLocationNotFound
	}
	cp := *l
	return &cp, nil
}

func (s *Store) GetService(_ context.Context, id int64) (*domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	svc, ok := s.services[id]
	if !ok {
		return nil, catalog.ErrServiceNotFound
	}
	cp := *svc
	return &cp, nil
}

func (s *Store) GetStaff(_ context.Context, id int64) (*domain.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.staff[id]
	if !ok {
		return nil, catalog.ErrStaffNotFound
	}
	cp := *st
	return &cp, nil
}

// ListStaffByLocation returns staff ordered by id ascending.
func (s *Store) ListStaffByLocation(_ context.Context, locationID int64) ([]*domain.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Staff, 0)
	for _, st := range s.staff {
		if st.LocationID == locationID {
			cp := *st
			out = append(out, &cp)
		}
	}
	slices.SortFunc(out, func(a, b *domain.Staff) int { return compareID(a.ID, b.ID) })
	return out, nil
}

// Create inserts b, failing with booking.ErrSlotNotAvailable when it overlaps
// another booking of the same staff member.
func (s *Store) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.bookings {
		if existing.StaffID == b.StaffID && existing.Overlaps(b.StartAt, b.End()) {
			return nil, fmt.Errorf("%w: overlaps booking %d", booking.ErrSlotNotAvailable, existing.ID)
		}
	}

	s.nextID++
	b.ID = s.nextID
	b.CreatedAt = s.now().UTC()

	cp := *b
	s.bookings[cp.ID] = &cp
	return b, nil
}

func (s *Store) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, booking.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

// GetWithFilter returns bookings overlapping [From, To), ordered like the SQL repository.
func (s *Store) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if filter.LocationID != nil && b.LocationID != *filter.LocationID {
			continue
		}
		if filter.StaffID != nil && b.StaffID != *filter.StaffID {
			continue
		}
		if filter.StaffIDs != nil && !slices.Contains(filter.StaffIDs, b.StaffID) {
			continue
		}
		if filter.To != nil && !b.StartAt.Before(*filter.To) {
			continue
		}
		if filter.From != nil && !b.End().After(*filter.From) {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}

	slices.SortFunc(out, func(a, b *domain.Booking) int {
		if c := a.StartAt.Compare(b.StartAt); c != 0 {
			return c
		}
		return compareID(a.StaffID, b.StaffID)
	})
	return out, nil
}

func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[id]; !ok {
		return booking.ErrBookingNotFound
	}
	delete(s.bookings, id)
	return nil
}

func compareID(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
