package testutil

import (
	"context"
	"sort"
	"sync"

	domain "github.com/dieselmedia/booking-api/internal/domain/booking"
	"github.com/dieselmedia/booking-api/internal/errs"
	"github.com/dieselmedia/booking-api/internal/models"
)

// InMemoryBookingStore is a Record Store Adapter for tests.
type InMemoryBookingStore struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking

	// Err, when set, is returned by every operation.
	Err error
}

func NewInMemoryBookingStore() *InMemoryBookingStore {
	return &InMemoryBookingStore{bookings: make(map[string]models.Booking)}
}

func (s *InMemoryBookingStore) Insert(_ context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}
	s.bookings[b.ID] = cloneBooking(*b)
	return nil
}

func (s *InMemoryBookingStore) ListRecent(_ context.Context, limit int) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.Err != nil {
		return nil, s.Err
	}

	out := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, cloneBooking(b))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *InMemoryBookingStore) GetByID(_ context.Context, id string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.Err != nil {
		return nil, s.Err
	}
	b, ok := s.bookings[id]
	if !ok {
		return nil, errs.NotFound("booking")
	}
	b = cloneBooking(b)
	return &b, nil
}

func (s *InMemoryBookingStore) UpdateStatus(_ context.Context, id string, status domain.Status) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	b, ok := s.bookings[id]
	if !ok {
		return nil, errs.NotFound("booking")
	}
	b.Status = string(status)
	s.bookings[id] = b

	b = cloneBooking(b)
	return &b, nil
}

func (s *InMemoryBookingStore) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.bookings[id]; !ok {
		return errs.NotFound("booking")
	}
	delete(s.bookings, id)
	return nil
}

func (s *InMemoryBookingStore) ListActiveTimes(_ context.Context, date string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.Err != nil {
		return nil, s.Err
	}
	times := []string{}
	for _, b := range s.bookings {
		if b.BookingDate == date && b.Status != string(domain.StatusCancelled) {
			times = append(times, b.BookingTime)
		}
	}
	return times, nil
}

func (s *InMemoryBookingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}

func cloneBooking(b models.Booking) models.Booking {
	if b.Message != nil {
		msg := *b.Message
		b.Message = &msg
	}
	return b
}

var _ domain.Repository = (*InMemoryBookingStore)(nil)
