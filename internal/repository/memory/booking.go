package memory

import (
	"context"
	"sync"

	"github.com/stpnv0/EventTicketing/internal/domain"
)

type BookingRepository struct {
	mu         sync.RWMutex
	bookings   map[int64]*domain.Booking
	byEvent    map[int64][]int64
	byConsumer map[string][]int64
	next       int64
}

func NewBookingRepo() *BookingRepository {
	return &BookingRepository{
		bookings:   make(map[int64]*domain.Booking),
		byEvent:    make(map[int64][]int64),
		byConsumer: make(map[string][]int64),
	}
}

func (r *BookingRepository) Create(_ context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	b.Number = r.next
	stored := *b
	r.bookings[b.Number] = &stored
	r.byEvent[b.EventNumber] = append(r.byEvent[b.EventNumber], b.Number)
	r.byConsumer[b.ConsumerID] = append(r.byConsumer[b.ConsumerID], b.Number)

	return nil
}

func (r *BookingRepository) GetByNumber(_ context.Context, number int64) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[number]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	res := *b

	return &res, nil
}

// UpdateStatus moves a booking from one status to another and fails with
// ErrBookingNotActive when the booking is no longer in from.
func (r *BookingRepository) UpdateStatus(_ context.Context, number int64, from, to domain.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[number]
	if !ok {
		return domain.ErrBookingNotFound
	}
	if b.Status != from {
		return domain.ErrBookingNotActive
	}
	b.Status = to

	return nil
}

func (r *BookingRepository) ListByEvent(_ context.Context, eventNumber int64) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(r.byEvent[eventNumber]), nil
}

func (r *BookingRepository) ListByConsumer(_ context.Context, consumerID string) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(r.byConsumer[consumerID]), nil
}

func (r *BookingRepository) collect(numbers []int64) []*domain.Booking {
	res := make([]*domain.Booking, 0, len(numbers))
	for _, n := range numbers {
		c := *r.bookings[n]
		res = append(res, &c)
	}
	return res
}
