// Package memory keeps the catalog, ledger and user store in process memory.
// Stored entities are copied on the way in and out, so callers never hold a
// pointer into the store.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/stpnv0/EventTicketing/internal/domain"
)

type EventRepository struct {
	mu     sync.RWMutex
	events map[int64]*domain.Event
	next   int64
}

func NewEventRepo() *EventRepository {
	return &EventRepository{events: make(map[int64]*domain.Event)}
}

func (r *EventRepository) Create(_ context.Context, e *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	e.Number = r.next
	stored := *e
	r.events[e.Number] = &stored

	return nil
}

func (r *EventRepository) GetByNumber(_ context.Context, number int64) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.events[number]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	res := *e

	return &res, nil
}

func (r *EventRepository) List(_ context.Context) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.Event, 0, len(r.events))
	for _, e := range r.events {
		c := *e
		res = append(res, &c)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Number < res[j].Number })

	return res, nil
}

// AdjustTicketsLeft adds delta to the inventory. The result must stay within
// [0, NumTicketsCap] and a cancelled event's inventory is frozen.
func (r *EventRepository) AdjustTicketsLeft(_ context.Context, number int64, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.events[number]
	if !ok {
		return domain.ErrEventNotFound
	}
	if !e.IsActive() {
		return domain.ErrEventNotActive
	}

	left := e.NumTicketsLeft + delta
	if left < 0 || left > e.NumTicketsCap {
		return domain.ErrInventoryOutOfBounds
	}
	e.NumTicketsLeft = left

	return nil
}

func (r *EventRepository) Cancel(_ context.Context, number int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.events[number]
	if !ok {
		return domain.ErrEventNotFound
	}
	if !e.IsActive() {
		return domain.ErrEventNotActive
	}
	e.Status = domain.EventStatusCancelled

	return nil
}
