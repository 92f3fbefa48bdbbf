package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/EventTicketing/internal/domain"
	"github.com/stpnv0/EventTicketing/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// InventoryMismatch describes an active event whose inventory does not add up:
// NumTicketsCap must equal NumTicketsLeft plus the tickets of active bookings.
type InventoryMismatch struct {
	EventNumber   int64
	NumTicketsCap int
	TicketsLeft   int
	TicketsBooked int
}

type AuditService struct {
	eventRepo   ports.EventRepo
	bookingRepo ports.BookingRepo
	locker      *EventLocker
	outcomes    *outcomes
	logger      logger.Logger
}

func NewAuditService(
	eventRepo ports.EventRepo,
	bookingRepo ports.BookingRepo,
	reporter ports.Reporter,
	locker *EventLocker,
	logger logger.Logger,
) *AuditService {
	return &AuditService{
		eventRepo:   eventRepo,
		bookingRepo: bookingRepo,
		locker:      locker,
		outcomes:    &outcomes{reporter: reporter, logger: logger, now: time.Now},
		logger:      logger,
	}
}

// Audit checks ticket conservation for every active event.
func (s *AuditService) Audit(ctx context.Context) ([]InventoryMismatch, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	var mismatches []InventoryMismatch
	checked := 0
	for _, e := range events {
		if !e.IsActive() {
			continue
		}

		m, res, err := s.auditEvent(ctx, e.Number)
		if err != nil {
			return mismatches, err
		}
		if res == auditSkipped {
			continue
		}
		checked++
		if res == auditMismatch {
			mismatches = append(mismatches, m)
			s.outcomes.emit(ctx, domain.InventoryAuditMismatch, map[string]any{
				"event_number":    m.EventNumber,
				"num_tickets_cap": m.NumTicketsCap,
				"tickets_left":    m.TicketsLeft,
				"tickets_booked":  m.TicketsBooked,
			})
		}
	}

	if len(mismatches) == 0 {
		s.outcomes.emit(ctx, domain.InventoryAuditOK, map[string]any{"events_checked": checked})
	}

	return mismatches, nil
}

type auditResult int

const (
	auditOK auditResult = iota
	auditMismatch
	// the event was cancelled after it was listed
	auditSkipped
)

func (s *AuditService) auditEvent(ctx context.Context, number int64) (InventoryMismatch, auditResult, error) {
	unlock := s.locker.Lock(number)
	defer unlock()

	event, err := s.eventRepo.GetByNumber(ctx, number)
	if err != nil {
		return InventoryMismatch{}, auditOK, fmt.Errorf("get event %d: %w", number, err)
	}
	if !event.IsActive() {
		return InventoryMismatch{}, auditSkipped, nil
	}

	bookings, err := s.bookingRepo.ListByEvent(ctx, number)
	if err != nil {
		return InventoryMismatch{}, auditOK, fmt.Errorf("list bookings of event %d: %w", number, err)
	}

	booked := 0
	for _, b := range bookings {
		if b.IsActive() {
			booked += b.NumTickets
		}
	}

	m := InventoryMismatch{
		EventNumber:   number,
		NumTicketsCap: event.NumTicketsCap,
		TicketsLeft:   event.NumTicketsLeft,
		TicketsBooked: booked,
	}
	if event.NumTicketsCap != event.NumTicketsLeft+booked {
		return m, auditMismatch, nil
	}

	return m, auditOK, nil
}
