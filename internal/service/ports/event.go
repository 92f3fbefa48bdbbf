package ports

import (
	"context"

	"github.com/stpnv0/EventTicketing/internal/domain"
)

// EventRepo is the event catalog. Create assigns the next event number.
type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByNumber(ctx context.Context, number int64) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	AdjustTicketsLeft(ctx context.Context, number int64, delta int) error
	Cancel(ctx context.Context, number int64) error
}
