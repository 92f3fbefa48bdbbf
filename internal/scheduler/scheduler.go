package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/EventTicketing/internal/service"
	"github.com/wb-go/wbf/logger"
)

type inventoryAuditor interface {
	Audit(ctx context.Context) ([]service.InventoryMismatch, error)
}

// Scheduler periodically checks that every active event's inventory adds up.
type Scheduler struct {
	auditor  inventoryAuditor
	interval time.Duration
	logger   logger.Logger
}

func New(
	auditor inventoryAuditor,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		auditor:  auditor,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	mismatches, err := s.auditor.Audit(ctx)
	if err != nil {
		s.logger.Error("failed to audit inventory",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, m := range mismatches {
		s.logger.Error("inventory mismatch",
			logger.Int64("event_number", m.EventNumber),
			logger.Int("num_tickets_cap", m.NumTicketsCap),
			logger.Int("tickets_left", m.TicketsLeft),
			logger.Int("tickets_booked", m.TicketsBooked),
		)
	}
}
