package ports

import (
	"context"

	"github.com/stpnv0/EventTicketing/internal/domain"
)

// BookingRepo is the booking ledger. Create assigns the next booking number.
type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByNumber(ctx context.Context, number int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, number int64, from, to domain.BookingStatus) error
	ListByEvent(ctx context.Context, eventNumber int64) ([]*domain.Booking, error)
	ListByConsumer(ctx context.Context, consumerID string) ([]*domain.Booking, error)
}
